package worker

import (
	"context"
	"errors"
	"fmt"

	"github.com/streadway/amqp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-matcher/internal/config"
)

// Channel is the subset of *amqp.Channel used by the consumer.
type Channel interface {
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp.Table) (amqp.Queue, error)
	Qos(prefetchCount, prefetchSize int, global bool) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp.Table) (<-chan amqp.Delivery, error)
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// Consumer reads requests from the request queue and answers each one.
type Consumer struct {
	ch   Channel
	cfg  config.WorkerConfig
	proc *Processor
	log  *zap.Logger
}

// NewConsumer creates a consumer. log may be nil.
func NewConsumer(ch Channel, cfg config.WorkerConfig, proc *Processor, log *zap.Logger) *Consumer {
	if log == nil {
		log = zap.NewNop()
	}
	return &Consumer{ch: ch, cfg: cfg, proc: proc, log: log}
}

// Run declares the queues and consumes with manual ack until ctx is cancelled
// or the delivery channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	for _, name := range []string{c.cfg.Queue, c.cfg.ResultQueue} {
		if name == "" {
			continue
		}
		if _, err := c.ch.QueueDeclare(
			name,  // queue name
			true,  // durable (survives broker restarts)
			false, // auto-delete when unused
			false, // exclusive
			false, // no-wait
			nil,   // arguments
		); err != nil {
			return fmt.Errorf("failed to declare queue %s: %w", name, err)
		}
	}

	workers := max(c.cfg.Concurrency, 1)
	if err := c.ch.Qos(workers, 0, false); err != nil {
		return fmt.Errorf("failed to set prefetch: %w", err)
	}

	deliveries, err := c.ch.Consume(
		c.cfg.Queue, // queue name
		"",          // consumer tag
		false,       // auto-ack
		false,       // exclusive
		false,       // no-local
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return fmt.Errorf("failed to consume %s: %w", c.cfg.Queue, err)
	}

	c.log.Info("worker consuming", zap.String("queue", c.cfg.Queue), zap.Int("concurrency", workers))

	g, ctx := errgroup.WithContext(ctx)
	for i := 0; i < workers; i++ {
		g.Go(func() error {
			for {
				select {
				case <-ctx.Done():
					return nil
				case d, ok := <-deliveries:
					if !ok {
						return nil
					}
					c.handle(d)
				}
			}
		})
	}
	return g.Wait()
}

// handle replies to one delivery and acknowledges it. A reply that cannot be
// published sends the request back to the queue.
func (c *Consumer) handle(d amqp.Delivery) {
	reply := c.proc.Process(d.Body)

	target := d.ReplyTo
	if target == "" {
		target = c.cfg.ResultQueue
	}

	if target != "" {
		err := c.ch.Publish(
			"",     // default exchange
			target, // routing key
			false,  // mandatory
			false,  // immediate
			amqp.Publishing{
				ContentType:   "application/json",
				CorrelationId: d.CorrelationId,
				DeliveryMode:  amqp.Persistent,
				Body:          reply,
			},
		)
		if err != nil {
			c.log.Error("failed to publish reply", zap.String("target", target), zap.Error(err))
			if nackErr := d.Nack(false, true); nackErr != nil {
				c.log.Error("failed to nack message", zap.Error(nackErr))
			}
			return
		}
	}

	if err := d.Ack(false); err != nil {
		c.log.Error("failed to ack message", zap.Error(err))
	}
}

// ErrConnectionClosed is returned by Serve when the broker drops the connection.
var ErrConnectionClosed = errors.New("amqp connection closed")

// Serve dials url, runs a consumer on a fresh channel and returns when ctx is
// cancelled or the connection is lost.
func Serve(ctx context.Context, url string, cfg config.WorkerConfig, proc *Processor, log *zap.Logger) error {
	conn, err := amqp.Dial(url)
	if err != nil {
		return fmt.Errorf("error dialling rabbitmq: %w", err)
	}
	defer conn.Close()

	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("error opening rabbitmq channel: %w", err)
	}
	defer ch.Close()

	closed := ch.NotifyClose(make(chan *amqp.Error, 1))

	if err := NewConsumer(ch, cfg, proc, log).Run(ctx); err != nil {
		return err
	}
	if ctx.Err() != nil {
		return nil
	}

	// Deliveries stopped without cancellation: the broker closed the channel.
	if amqpErr, ok := <-closed; ok && amqpErr != nil {
		return fmt.Errorf("%w: %v", ErrConnectionClosed, amqpErr)
	}
	return ErrConnectionClosed
}
