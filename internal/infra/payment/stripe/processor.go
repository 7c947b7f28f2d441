// Package stripe implements the payment processor on top of the Stripe API.
package stripe

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"marketplace/config"
	"marketplace/internal/domain/entity"
	"marketplace/internal/domain/service"
	"marketplace/internal/errors"
	"marketplace/internal/infra/metrics"

	stripego "github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
	"go.uber.org/fx"
)

const customerIdempotencyPrefix = "customer-"

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Logger  *slog.Logger
	Metrics *metrics.Metrics
}

// processor implements service.PaymentProcessor with customer sources (cards) on Stripe.
type processor struct {
	api     *client.API
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// NewPaymentProcessor creates the Stripe-backed processor from config.
func NewPaymentProcessor(params Params) (service.PaymentProcessor, error) {
	cfg := params.Config.Payment
	if cfg == nil || cfg.SecretKey == "" {
		return nil, errors.New("payment.secretKey must be provided")
	}
	if cfg.Provider != "" && cfg.Provider != "stripe" {
		return nil, errors.Errorf("unsupported payment provider: %s", cfg.Provider)
	}

	api := newAPI(cfg.SecretKey, cfg.BackendURL, cfg.MaxNetworkRetries, params.Logger)

	return &processor{
		api:     api,
		logger:  params.Logger,
		metrics: params.Metrics,
	}, nil
}

func newAPI(secretKey, backendURL string, maxRetries int64, logger *slog.Logger) *client.API {
	backendConfig := &stripego.BackendConfig{
		MaxNetworkRetries: stripego.Int64(maxRetries),
		LeveledLogger:     &slogLeveledLogger{logger: logger},
	}
	if backendURL != "" {
		backendConfig.URL = stripego.String(backendURL)
	}

	backend := stripego.GetBackendWithConfig(stripego.APIBackend, backendConfig)

	api := &client.API{}
	api.Init(secretKey, &stripego.Backends{
		API:     backend,
		Connect: backend,
		Uploads: backend,
	})

	return api
}

// CreateCustomer provisions a customer keyed by the user id, so a retried provisioning
// for the same user returns the customer created by the first attempt.
func (p *processor) CreateCustomer(ctx context.Context, input service.CustomerInput) (string, error) {
	params := &stripego.CustomerParams{
		Email: stripego.String(input.Email),
		Name:  stripego.String(input.Name),
	}
	params.Context = ctx
	params.AddMetadata("userId", input.UserID)
	params.SetIdempotencyKey(customerIdempotencyPrefix + input.UserID)

	var customer *stripego.Customer
	err := p.call(ctx, "create_customer", func() (err error) {
		customer, err = p.api.Customers.New(params)

		return err
	})
	if err != nil {
		return "", err
	}

	return customer.ID, nil
}

// GetDefaultSource returns the customer's default source id.
func (p *processor) GetDefaultSource(ctx context.Context, customerID string) (string, error) {
	params := &stripego.CustomerParams{}
	params.Context = ctx

	var customer *stripego.Customer
	err := p.call(ctx, "get_customer", func() (err error) {
		customer, err = p.api.Customers.Get(customerID, params)

		return err
	})
	if err != nil {
		return "", err
	}
	if customer.Deleted {
		return "", errors.Wrapf(service.ErrProcessorResourceMissing, "customer %s was deleted", customerID)
	}
	if customer.DefaultSource == nil {
		return "", nil
	}

	return customer.DefaultSource.ID, nil
}

// CountCards counts the card payment methods attached to the customer.
func (p *processor) CountCards(ctx context.Context, customerID string) (int, error) {
	params := &stripego.PaymentMethodListParams{
		Customer: stripego.String(customerID),
		Type:     stripego.String(string(stripego.PaymentMethodTypeCard)),
	}
	params.Context = ctx

	count := 0
	err := p.call(ctx, "list_cards", func() error {
		iter := p.api.PaymentMethods.List(params)
		for iter.Next() {
			count++
		}

		return iter.Err()
	})
	if err != nil {
		return 0, err
	}

	return count, nil
}

// AttachCard attaches the tokenized card as a new customer source.
func (p *processor) AttachCard(ctx context.Context, customerID, token string) (*entity.CardDetail, error) {
	params := &stripego.CardParams{
		Customer: stripego.String(customerID),
		Token:    stripego.String(token),
	}
	params.Context = ctx

	var card *stripego.Card
	err := p.call(ctx, "attach_card", func() (err error) {
		card, err = p.api.Cards.New(params)

		return err
	})
	if err != nil {
		return nil, err
	}

	return toCardDetail(card), nil
}

// GetCard fetches live card detail.
func (p *processor) GetCard(ctx context.Context, customerID, cardID string) (*entity.CardDetail, error) {
	params := &stripego.CardParams{Customer: stripego.String(customerID)}
	params.Context = ctx

	var card *stripego.Card
	err := p.call(ctx, "get_card", func() (err error) {
		card, err = p.api.Cards.Get(cardID, params)

		return err
	})
	if err != nil {
		return nil, err
	}

	return toCardDetail(card), nil
}

// UpdateCard pushes the provided fields. Stripe takes expiry as strings.
func (p *processor) UpdateCard(ctx context.Context, customerID, cardID string, update service.CardUpdate) (*entity.CardDetail, error) {
	params := &stripego.CardParams{Customer: stripego.String(customerID)}
	params.Context = ctx
	if update.Name != nil {
		params.Name = stripego.String(*update.Name)
	}
	if update.ExpiryMonth != nil {
		params.ExpMonth = stripego.String(strconv.Itoa(*update.ExpiryMonth))
	}
	if update.ExpiryYear != nil {
		params.ExpYear = stripego.String(strconv.Itoa(*update.ExpiryYear))
	}

	var card *stripego.Card
	err := p.call(ctx, "update_card", func() (err error) {
		card, err = p.api.Cards.Update(cardID, params)

		return err
	})
	if err != nil {
		return nil, err
	}

	return toCardDetail(card), nil
}

// DeleteCard removes the source and reports the processor's deleted flag.
func (p *processor) DeleteCard(ctx context.Context, customerID, cardID string) (bool, error) {
	params := &stripego.CardParams{Customer: stripego.String(customerID)}
	params.Context = ctx

	var card *stripego.Card
	err := p.call(ctx, "delete_card", func() (err error) {
		card, err = p.api.Cards.Del(cardID, params)

		return err
	})
	if err != nil {
		return false, err
	}

	return card != nil && card.Deleted, nil
}

// SetDefaultCard updates the customer's default source.
func (p *processor) SetDefaultCard(ctx context.Context, customerID, cardID string) error {
	params := &stripego.CustomerParams{DefaultSource: stripego.String(cardID)}
	params.Context = ctx

	return p.call(ctx, "set_default_card", func() error {
		_, err := p.api.Customers.Update(customerID, params)

		return err
	})
}

// call times fn, records the outcome and translates Stripe errors.
func (p *processor) call(ctx context.Context, operation string, fn func() error) error {
	started := time.Now()
	err := fn()
	p.metrics.ObserveProcessorCall(operation, started, err)
	if err == nil {
		return nil
	}

	p.logger.WarnContext(ctx, "Payment processor call failed",
		slog.String("operation", operation),
		slog.Duration("elapsed", time.Since(started)),
		slog.Any("error", err),
	)

	return translateError(operation, err)
}

func translateError(operation string, err error) error {
	var stripeErr *stripego.Error
	if !errors.As(err, &stripeErr) {
		return errors.Wrapf(err, "stripe %s", operation)
	}

	switch {
	case stripeErr.Type == stripego.ErrorTypeCard:
		return errors.Wrapf(service.ErrProcessorCardRejected, "stripe %s: %s", operation, stripeErr.Msg)
	case stripeErr.HTTPStatusCode == http.StatusNotFound || stripeErr.Code == stripego.ErrorCodeResourceMissing:
		return errors.Wrapf(service.ErrProcessorResourceMissing, "stripe %s: %s", operation, stripeErr.Msg)
	default:
		return errors.Wrapf(err, "stripe %s", operation)
	}
}

func toCardDetail(card *stripego.Card) *entity.CardDetail {
	if card == nil {
		return nil
	}

	return &entity.CardDetail{
		CardID:      card.ID,
		Name:        card.Name,
		ExpiryMonth: card.ExpMonth,
		ExpiryYear:  card.ExpYear,
		Last4:       card.Last4,
		Brand:       string(card.Brand),
	}
}
