package app

import (
	"context"
	"time"

	"github.com/IBM/sarama"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	goredis "github.com/redis/go-redis/v9"

	notificationGateway "fastship/internal/gateway/kafka/notification"
	"fastship/internal/handlers/rest/partner_patch"
	"fastship/internal/handlers/rest/partner_signup_post"
	"fastship/internal/handlers/rest/partner_token_post"
	"fastship/internal/handlers/rest/partner_verify_get"
	"fastship/internal/handlers/rest/seller_signup_post"
	"fastship/internal/handlers/rest/seller_token_post"
	"fastship/internal/handlers/rest/seller_verify_get"
	"fastship/internal/handlers/rest/shipment_cancel_post"
	"fastship/internal/handlers/rest/shipment_get"
	"fastship/internal/handlers/rest/shipment_patch"
	"fastship/internal/handlers/rest/shipment_post"
	"fastship/internal/handlers/rest/shipment_rate_post"
	"fastship/internal/handlers/rest/shipment_tag_delete"
	"fastship/internal/handlers/rest/shipment_tag_post"
	"fastship/internal/handlers/tasks/overdue_alert"
	"fastship/internal/pkg/auth"
	"fastship/internal/pkg/config"
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
	"fastship/pkg/background"
	"fastship/pkg/logger"
	"fastship/pkg/querier"
	"fastship/pkg/tx"
)

type (
	AlertInterval time.Duration
	AlertWindow   time.Duration
)

type Application struct {
	ServiceShipment   ServiceShipment
	ServiceSeller     ServiceSeller
	ServicePartner    ServicePartner
	AccessTokens      *auth.JWTAccessTokens
	Denylist          *redispkg.Denylist
	BackgroundWorkers *background.Worker
}

type ServiceShipment interface {
	shipment_get.Service
	shipment_post.Service
	shipment_patch.Service
	shipment_cancel_post.Service
	shipment_rate_post.Service
	shipment_tag_post.Service
	shipment_tag_delete.Service
}

type ServiceSeller interface {
	seller_signup_post.Service
	seller_token_post.Service
	seller_verify_get.Service
}

type ServicePartner interface {
	partner_signup_post.Service
	partner_token_post.Service
	partner_verify_get.Service
	partner_patch.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideShipmentRepository(querier *querier.Querier) *shipmentRepo.Repository {
	return shipmentRepo.New(querier)
}

func providePartnerRepository(querier *querier.Querier) *partnerRepo.Repository {
	return partnerRepo.New(querier)
}

func provideSellerRepository(querier *querier.Querier) *sellerRepo.Repository {
	return sellerRepo.New(querier)
}

func provideDenylist(redisClient *goredis.Client) *redispkg.Denylist {
	return redispkg.NewDenylist(redisClient)
}

func provideAccessTokens(cfg *config.Config) *auth.JWTAccessTokens {
	return auth.NewJWTAccessTokens(cfg.Security.AccessTokenSecret, cfg.Security.AccessTokenTTL)
}

func provideLinkTokens(cfg *config.Config) *token.HMACLinkTokens {
	return token.NewHMACLinkTokens(cfg.Security.LinkTokenSecret)
}

func providePasswordHasher() *auth.BcryptHasher {
	return auth.NewBcryptHasher()
}

func provideNotificationGateway(producer sarama.SyncProducer, cfg *config.Config) *notificationGateway.NotificationGateway {
	return notificationGateway.New(producer, cfg.Kafka.Topic)
}

func provideTimelineService(repository timelineService.Repository) *timelineService.Timeline {
	return timelineService.New(repository)
}

func provideAssignmentService(repository assignmentService.Repository) *assignmentService.Assignment {
	return assignmentService.New(repository)
}

func provideSellerService(
	repository sellerService.Repository,
	hasher sellerService.PasswordHasher,
	accessTokens sellerService.AccessTokens,
	linkTokens sellerService.LinkTokens,
	notifier sellerService.Notifier,
	cfg *config.Config,
) *sellerService.Seller {
	return sellerService.New(repository, hasher, accessTokens, linkTokens, notifier, cfg.App.Domain)
}

func providePartnerService(
	repository partnerService.Repository,
	hasher partnerService.PasswordHasher,
	accessTokens partnerService.AccessTokens,
	linkTokens partnerService.LinkTokens,
	notifier partnerService.Notifier,
	cfg *config.Config,
) *partnerService.Partner {
	return partnerService.New(repository, hasher, accessTokens, linkTokens, notifier, cfg.App.Domain)
}

func provideShipmentService(
	repository shipmentService.Repository,
	assignment shipmentService.AssignmentService,
	timeline shipmentService.TimelineService,
	sellers shipmentService.SellerDirectory,
	notifier shipmentService.Notifier,
	linkTokens shipmentService.LinkTokens,
	denylist shipmentService.TokenDenylist,
	txManager shipmentService.TxManager,
	cfg *config.Config,
) *shipmentService.Shipment {
	return shipmentService.New(
		repository,
		assignment,
		timeline,
		sellers,
		notifier,
		linkTokens,
		denylist,
		txManager,
		cfg.App.Domain,
	)
}

func provideAlertInterval(cfg *config.Config) AlertInterval {
	return AlertInterval(cfg.Tasks.OverdueAlertInterval)
}

func provideAlertWindow(cfg *config.Config) AlertWindow {
	return AlertWindow(cfg.Tasks.OverdueAlertWindow)
}

func provideOverdueAlertTask(
	log logger.Logger,
	shipmentService overdue_alert.Service,
	interval AlertInterval,
	window AlertWindow,
) *overdue_alert.OverdueAlert {
	return overdue_alert.NewOverdueAlert(log, shipmentService, time.Duration(interval), time.Duration(window))
}

func provideTaskList(
	overdueAlertTask *overdue_alert.OverdueAlert,
) []background.Task {
	return []background.Task{
		overdueAlertTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
