package payments

import (
	"context"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
	"go.uber.org/zap"

	"github.com/barbearia-af/booking-api/internal/models"
)

// Gateway cria uma preferência de pagamento do Mercado Pago para o serviço
// agendado. Opcional: sem token configurado o agendamento segue sem link e o
// cliente paga na barbearia.
type Gateway struct {
	client preference.Client
	log    *zap.Logger
}

func NewGateway(accessToken string, log *zap.Logger) *Gateway {
	if accessToken == "" {
		return nil
	}

	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		log.Warn("mercado pago disabled: bad credentials", zap.Error(err))
		return nil
	}

	return &Gateway{
		client: preference.NewClient(cfg),
		log:    log,
	}
}

// PaymentLink devolve a URL de checkout; erro aqui nunca bloqueia o
// agendamento, só deixa o link de fora.
func (g *Gateway) PaymentLink(ctx context.Context, ap *models.Appointment, svc *models.Service) string {
	req := preference.Request{
		ExternalReference: ap.ID.String(),
		Items: []preference.ItemRequest{
			{
				Title:      svc.Name,
				Quantity:   1,
				UnitPrice:  svc.Price,
				CurrencyID: "BRL",
			},
		},
	}

	resp, err := g.client.Create(ctx, req)
	if err != nil {
		g.log.Warn("payment preference failed",
			zap.String("appointment_id", ap.ID.String()),
			zap.Error(err),
		)
		return ""
	}

	return resp.InitPoint
}
