package natspub

import (
	"fmt"

	jsoniter "github.com/json-iterator/go"
	natsgo "github.com/nats-io/nats.go"
	"github.com/pkg/errors"

	"github.com/homanp/ohh/hand"
	"github.com/homanp/ohh/logging"
	"github.com/homanp/ohh/util"
)

var publisherLogger = logging.GetZeroLogger("natspub::publisher", nil)

// Publisher pushes finalized hand history documents to a NATS subject so
// downstream consumers (trackers, analytics) can pick them up.
type Publisher struct {
	natsURL string
	nc      *natsgo.Conn
}

func NewPublisher(natsURL string) (*Publisher, error) {
	nc, err := natsgo.Connect(natsURL)
	if err != nil {
		return nil, errors.Wrapf(err, "Unable to connect to NATS server [%s]", natsURL)
	}
	publisherLogger.Info().Msgf("Connected to NATS server [%s]", natsURL)
	return &Publisher{
		natsURL: natsURL,
		nc:      nc,
	}, nil
}

// PublishHand publishes the hand to hand.history.<game_number>.
func (p *Publisher) PublishHand(h *hand.HandHistory) error {
	data, err := jsoniter.Marshal(h)
	if err != nil {
		return err
	}
	subject := fmt.Sprintf("hand.history.%s", h.GameNumber)
	err = p.nc.Publish(subject, data)
	if err != nil {
		util.Metrics.HandPublishFailed()
		return errors.Wrapf(err, "Unable to publish hand to subject [%s]", subject)
	}
	publisherLogger.Debug().
		Str(logging.GameNumberKey, h.GameNumber).
		Msgf("Published hand to subject [%s]", subject)
	return nil
}

func (p *Publisher) Close() {
	p.nc.Close()
}
