package queue

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/juanpgarcia/cine-estructurales/internal/ticket"
)

// StartSalesConsumer connects to RabbitMQ, declares the venta.completada
// queue (durable) and consumes it, appending one printed receipt line per
// sale to logs/sales.log.  It runs a reconnect loop with backoff and never
// returns under normal operation; processing errors are logged and the
// offending message rejected so the loop keeps going.
func StartSalesConsumer() error {
	url := BrokerURL()
	backoff := time.Second
	for {
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("sales-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			time.Sleep(backoff)
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second // reset after successful connect

		if err := consumeLoop(conn); err != nil {
			log.Printf("sales-consumer: consume loop ended: %v; reconnecting", err)
			time.Sleep(2 * time.Second)
		}
	}
}

func consumeLoop(conn *amqp.Connection) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if _, err := ch.QueueDeclare(SaleQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}

	msgs, err := ch.Consume(SaleQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body); err != nil {
			log.Printf("sales-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

// handleMessage renders the sale through the printed-ticket channel and
// appends the lines to logs/sales.log.
func handleMessage(body []byte) error {
	var ev SaleCompletedEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	lines, err := renderReceipts(ev)
	if err != nil {
		return err
	}

	if err := os.MkdirAll("logs", 0o755); err != nil {
		return fmt.Errorf("mkdir logs: %w", err)
	}
	f, err := os.OpenFile(filepath.Join("logs", "sales.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()

	for _, line := range lines {
		if _, err := fmt.Fprintf(f, "[%s] %s\n", ev.VendidoEn, line); err != nil {
			return fmt.Errorf("write log: %w", err)
		}
	}
	return nil
}

// renderReceipts turns an event into printed receipt lines, one per seat
// for seat sales and a single line for combos.
func renderReceipts(ev SaleCompletedEvent) ([]string, error) {
	channel := ticket.PrintChannel{}
	switch ev.Tipo {
	case TipoEntrada:
		lines := make([]string, 0, len(ev.Asientos))
		for _, a := range ev.Asientos {
			line, err := channel.Emit(ticket.SeatData{Asiento: a, Precio: ev.PrecioAsiento})
			if err != nil {
				return nil, fmt.Errorf("render seat receipt: %w", err)
			}
			lines = append(lines, fmt.Sprintf("%s | %s (%s)", line, ev.Pelicula, ev.Sala))
		}
		return lines, nil
	case TipoCombo:
		line, err := channel.Emit(ticket.ComboData{Combo: ev.Combo, Descripcion: ev.Descripcion, Precio: ev.Total})
		if err != nil {
			return nil, fmt.Errorf("render combo receipt: %w", err)
		}
		return []string{line}, nil
	default:
		return nil, fmt.Errorf("unknown sale type %q", ev.Tipo)
	}
}
