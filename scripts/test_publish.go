//go:build ignore
// +build ignore

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

// Скрипт для ручной проверки воркера уведомлений: публикует тестовое
// событие заявки в стрим и выходит. Запуск: go run scripts/test_publish.go

type AppointmentEvent struct {
	Type          string    `json:"type"`
	AppointmentID string    `json:"appointment_id"`
	ClientID      string    `json:"client_id"`
	ProviderID    string    `json:"provider_id"`
	Service       string    `json:"service"`
	Status        string    `json:"status"`
	OccurredAt    time.Time `json:"occurred_at"`
}

func main() {
	redisAddr := flag.String("redis", "localhost:6379", "Redis address for streams")
	providerID := flag.String("provider", "test-provider", "Provider ID (notification recipient)")
	flag.Parse()

	client := redis.NewClient(&redis.Options{
		Addr: *redisAddr,
	})
	defer client.Close()

	ctx := context.Background()

	if err := client.Ping(ctx).Err(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	event := AppointmentEvent{
		Type:          "created",
		AppointmentID: uuid.NewString(),
		ClientID:      "test-client",
		ProviderID:    *providerID,
		Service:       "standard",
		Status:        "pending",
		OccurredAt:    time.Now(),
	}

	data, err := json.Marshal(event)
	if err != nil {
		log.Fatalf("Failed to marshal event: %v", err)
	}

	result, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: "stream:appointments:events",
		Values: map[string]interface{}{
			"data": string(data),
		},
	}).Result()
	if err != nil {
		log.Fatalf("Failed to publish event: %v", err)
	}

	fmt.Printf("Event published\n")
	fmt.Printf("  Stream: stream:appointments:events\n")
	fmt.Printf("  Message ID: %s\n", result)
	fmt.Printf("  Appointment ID: %s\n", event.AppointmentID)
	fmt.Printf("  Recipient: %s\n", event.ProviderID)
}
