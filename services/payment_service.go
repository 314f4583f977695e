package services

import (
	"context"
	"net/http"
	"time"

	"github.com/stripe/stripe-go/v82"
	stripeclient "github.com/stripe/stripe-go/v82/client"
	"go.uber.org/zap"

	"github.com/IlyaM70/RedMango-API/entity"
	"github.com/IlyaM70/RedMango-API/repository"
)

// Intent is what the frontend needs to confirm a charge client-side.
type Intent struct {
	ID           string
	ClientSecret string
}

// IntentClient creates a charge intent with the payment provider. The call
// crosses a process boundary and is not idempotent: a retry after a timeout
// may leave a duplicate intent on the provider side.
type IntentClient interface {
	CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error)
}

// stripeIntentClient backs IntentClient with Stripe PaymentIntents, using a
// bounded HTTP timeout so a hung provider fails the request instead of
// blocking it.
type stripeIntentClient struct {
	api *stripeclient.API
}

func NewStripeIntentClient(secretKey string) IntentClient {
	httpClient := &http.Client{Timeout: 15 * time.Second}
	api := &stripeclient.API{}
	api.Init(secretKey, stripe.NewBackends(httpClient))
	return &stripeIntentClient{api: api}
}

func (c *stripeIntentClient) CreateIntent(ctx context.Context, amount int64, currency string) (*Intent, error) {
	params := &stripe.PaymentIntentParams{
		Params:   stripe.Params{Context: ctx},
		Amount:   stripe.Int64(amount),
		Currency: stripe.String(currency),
		AutomaticPaymentMethods: &stripe.PaymentIntentAutomaticPaymentMethodsParams{
			Enabled: stripe.Bool(true),
		},
	}
	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, err
	}
	return &Intent{ID: pi.ID, ClientSecret: pi.ClientSecret}, nil
}

type PaymentService struct {
	CartRepo *repository.CartRepository
	Intents  IntentClient
	Currency string
	Log      *zap.SugaredLogger
}

func NewPaymentService(cr *repository.CartRepository, intents IntentClient, currency string, log *zap.SugaredLogger) *PaymentService {
	return &PaymentService{CartRepo: cr, Intents: intents, Currency: currency, Log: log}
}

// CreatePaymentIntent totals the user's cart at live prices, asks the provider
// for an intent over the minor-unit amount, and stores the provider handles on
// the cart so the upcoming order creation can carry them forward. An empty or
// missing cart fails before any provider call is made.
func (s *PaymentService) CreatePaymentIntent(ctx context.Context, userID uint) (*entity.Cart, error) {
	cart, err := s.CartRepo.GetCartWithItems(userID)
	if err != nil {
		return nil, err
	}
	if cart.ID == 0 || len(cart.Items) == 0 {
		return nil, ErrCartEmpty
	}

	cart.CartTotal = CartTotal(cart)
	// Provider amounts are integer minor units; fractional remainders truncate.
	amount := cart.CartTotal.Shift(2).IntPart()

	intent, err := s.Intents.CreateIntent(ctx, amount, s.Currency)
	if err != nil {
		s.Log.Errorw("create payment intent", "userId", userID, "err", err)
		return nil, ErrExternalProvider
	}

	if err := s.CartRepo.SavePaymentRef(cart.ID, intent.ID, intent.ClientSecret); err != nil {
		return nil, err
	}
	cart.StripePaymentIntentID = intent.ID
	cart.ClientSecret = intent.ClientSecret
	return cart, nil
}
