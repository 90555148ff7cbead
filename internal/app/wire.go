//go:build wireinject
// +build wireinject

package app

import (
	"context"

	notificationGateway "fastship/internal/gateway/kafka/notification"
	"fastship/internal/handlers/rest/logout_get"
	"fastship/internal/handlers/tasks/overdue_alert"
	"fastship/internal/pkg/auth"
	"fastship/internal/pkg/config"
	authmw "fastship/internal/pkg/middlewares/auth"
	redispkg "fastship/internal/pkg/redis"
	"fastship/internal/pkg/token"

	partnerRepo "fastship/internal/repository/partner"
	sellerRepo "fastship/internal/repository/seller"
	shipmentRepo "fastship/internal/repository/shipment"
	assignmentService "fastship/internal/service/assignment"
	partnerService "fastship/internal/service/partner"
	sellerService "fastship/internal/service/seller"
	shipmentService "fastship/internal/service/shipment"
	timelineService "fastship/internal/service/timeline"

	"fastship/pkg/logger"
	"fastship/pkg/tx"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"
)

// InitializeApplication wires the HTTP service (cmd/service).
func InitializeApplication(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	redisClient *goredis.Client,
	producer sarama.SyncProducer,
	cfg *config.Config,
) (*Application, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,
		provideAlertInterval,
		provideAlertWindow,

		provideShipmentRepository,
		providePartnerRepository,
		provideSellerRepository,

		provideDenylist,
		provideAccessTokens,
		provideLinkTokens,
		providePasswordHasher,
		provideNotificationGateway,

		provideTimelineService,
		provideAssignmentService,
		provideSellerService,
		providePartnerService,
		provideShipmentService,

		provideOverdueAlertTask,
		provideTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(Application), "*"),

		wire.Bind(new(ServiceShipment), new(*shipmentService.Shipment)),
		wire.Bind(new(ServiceSeller), new(*sellerService.Seller)),
		wire.Bind(new(ServicePartner), new(*partnerService.Partner)),

		wire.Bind(new(shipmentService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(timelineService.Repository), new(*shipmentRepo.Repository)),
		wire.Bind(new(assignmentService.Repository), new(*partnerRepo.Repository)),
		wire.Bind(new(sellerService.Repository), new(*sellerRepo.Repository)),
		wire.Bind(new(partnerService.Repository), new(*partnerRepo.Repository)),

		wire.Bind(new(shipmentService.AssignmentService), new(*assignmentService.Assignment)),
		wire.Bind(new(shipmentService.TimelineService), new(*timelineService.Timeline)),
		wire.Bind(new(shipmentService.SellerDirectory), new(*sellerService.Seller)),

		wire.Bind(new(shipmentService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(sellerService.Notifier), new(*notificationGateway.NotificationGateway)),
		wire.Bind(new(partnerService.Notifier), new(*notificationGateway.NotificationGateway)),

		wire.Bind(new(shipmentService.LinkTokens), new(*token.HMACLinkTokens)),
		wire.Bind(new(sellerService.LinkTokens), new(*token.HMACLinkTokens)),
		wire.Bind(new(partnerService.LinkTokens), new(*token.HMACLinkTokens)),

		wire.Bind(new(sellerService.AccessTokens), new(*auth.JWTAccessTokens)),
		wire.Bind(new(partnerService.AccessTokens), new(*auth.JWTAccessTokens)),
		wire.Bind(new(authmw.AccessTokens), new(*auth.JWTAccessTokens)),

		wire.Bind(new(sellerService.PasswordHasher), new(*auth.BcryptHasher)),
		wire.Bind(new(partnerService.PasswordHasher), new(*auth.BcryptHasher)),

		wire.Bind(new(shipmentService.TokenDenylist), new(*redispkg.Denylist)),
		wire.Bind(new(authmw.TokenDenylist), new(*redispkg.Denylist)),
		wire.Bind(new(logout_get.TokenDenylist), new(*redispkg.Denylist)),

		wire.Bind(new(shipmentService.TxManager), new(*tx.Manager)),

		wire.Bind(new(overdue_alert.Service), new(*shipmentService.Shipment)),
	)
	return &Application{}, nil
}
