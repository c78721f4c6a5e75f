package main

import (
	"context"
	"encoding/json"
	"flag"
	"log"
	"math/rand"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/SergeyBogomolovv/agro-market/internal/handler"
	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

// Publishes payment notifications for the given orders, the way the payment
// processor would. A fraction of messages is deliberately broken to exercise the DLQ.
func main() {
	brokers := flag.String("brokers", "localhost:9092", "comma separated kafka brokers")
	topic := flag.String("topic", "payments", "payments topic")
	orders := flag.String("orders", "", "comma separated order ids")
	interval := flag.Duration("interval", 2*time.Second, "delay between messages")
	flag.Parse()

	ids := strings.Split(*orders, ",")
	if *orders == "" {
		log.Fatal("at least one order id is required")
	}

	writer := &kafka.Writer{
		Addr:                   kafka.TCP(strings.Split(*brokers, ",")...),
		Topic:                  *topic,
		AllowAutoTopicCreation: true,
	}
	defer writer.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	ticker := time.NewTicker(*interval)
	defer ticker.Stop()
	for {
		select {
		case <-ticker.C:
			orderID := ids[rand.Intn(len(ids))]
			data := randomNotification(orderID)
			if err := writer.WriteMessages(ctx, kafka.Message{Key: []byte(orderID), Value: data}); err != nil {
				log.Println("failed to write message:", err)
				continue
			}
			log.Println("payment notification sent", string(data))
		case <-ctx.Done():
			return
		}
	}
}

func randomNotification(orderID string) []byte {
	if rand.Intn(10) == 0 {
		return []byte(`{"order_id":"` + orderID + `"`)
	}

	statuses := []string{"paid", "paid", "paid", "failed", "refunded"}
	data, _ := json.Marshal(handler.PaymentNotification{
		OrderID:       orderID,
		PaymentStatus: statuses[rand.Intn(len(statuses))],
		TransactionID: "tx_" + uuid.NewString(),
	})
	return data
}
