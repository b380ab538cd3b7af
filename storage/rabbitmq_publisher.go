package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"bikeshare/communication"
	"bikeshare/domain/business/queryresponse"

	log "github.com/sirupsen/logrus"
)

// broker is the part of communication.RabbitMQ used by the publisher
type broker interface {
	DeclareNonAnonymousQueues(queuesConfig []communication.QueueDeclarationConfig) error
	PublishMessageInQueue(ctx context.Context, queueName string, message []byte, contentType string) error
	KillBadBunny() error
}

// RabbitMQPublisher publishes every report as a message in a RabbitMQ queue
type RabbitMQPublisher struct {
	broker      broker
	queue       communication.QueueDeclarationConfig
	contentType string
}

// NewRabbitMQPublisher connects to RabbitMQ and declares the output queue
func NewRabbitMQPublisher(rabbitURL string, queue communication.QueueDeclarationConfig, contentType string) (*RabbitMQPublisher, error) {
	rabbitMQ, err := communication.NewRabbitMQ(rabbitURL)
	if err != nil {
		return nil, err
	}

	publisher, err := newRabbitMQPublisher(rabbitMQ, queue, contentType)
	if err != nil {
		_ = rabbitMQ.KillBadBunny()
		return nil, err
	}
	return publisher, nil
}

func newRabbitMQPublisher(b broker, queue communication.QueueDeclarationConfig, contentType string) (*RabbitMQPublisher, error) {
	err := b.DeclareNonAnonymousQueues([]communication.QueueDeclarationConfig{queue})
	if err != nil {
		return nil, err
	}

	log.Infof("[publisher: rabbitmq][queue: %s][status: OK] queue declared correctly!", queue.Name)
	return &RabbitMQPublisher{
		broker:      b,
		queue:       queue,
		contentType: contentType,
	}, nil
}

// Write publishes the report in the output queue
func (rp *RabbitMQPublisher) Write(ctx context.Context, report *queryresponse.QueryResponse) error {
	reportBytes, err := json.Marshal(report)
	if err != nil {
		return fmt.Errorf("%w: error marshalling report %s", err, report.QueryID)
	}

	err = rp.broker.PublishMessageInQueue(ctx, rp.queue.Name, reportBytes, rp.contentType)
	if err != nil {
		log.Errorf("[publisher: rabbitmq][query: %s][status: ERROR] error publishing report: %s", report.QueryID, err.Error())
		return err
	}

	log.Debugf("[publisher: rabbitmq][query: %s][status: OK] report published in %s", report.QueryID, rp.queue.Name)
	return nil
}

func (rp *RabbitMQPublisher) Close() error {
	return rp.broker.KillBadBunny()
}
