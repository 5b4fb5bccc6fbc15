package buildqueueamqp

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/rabbitmq/amqp091-go"

	"github.com/k11v/mortar/internal/amqputil"
	"github.com/k11v/mortar/internal/buildqueue"
)

const queueName = "build_tasks"

var _ buildqueue.Broker = (*Broker)(nil)

type Broker struct {
	client *amqputil.Client // required
}

func NewBroker(conf *amqputil.Config) *Broker {
	client := amqputil.NewClient(conf, &amqputil.QueueDeclareParams{
		Name:    queueName,
		Durable: true,
	})
	return &Broker{client: client}
}

// SendBuildTask implements buildqueue.Broker.
func (b *Broker) SendBuildTask(ctx context.Context, t *buildqueue.Task) error {
	body, err := json.Marshal(t)
	if err != nil {
		return fmt.Errorf("send build task: %w", err)
	}

	err = b.client.Publish(ctx, "", queueName, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		return fmt.Errorf("send build task: %w", err)
	}

	return nil
}
