package apphttp

import (
	"log/slog"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/authenticcheckers/waecvoucherpfront/internal/config"
	"github.com/authenticcheckers/waecvoucherpfront/internal/http/handlers"
	"github.com/authenticcheckers/waecvoucherpfront/internal/http/middleware"
	"github.com/authenticcheckers/waecvoucherpfront/internal/mailer"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/admin"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/email"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/fulfillment"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/payments"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/purchases"
	"github.com/authenticcheckers/waecvoucherpfront/internal/modules/vouchers"
	"github.com/authenticcheckers/waecvoucherpfront/internal/sms"
	"github.com/authenticcheckers/waecvoucherpfront/internal/storage"
)

// Deps carries everything the router wires together. Optional entries
// (Storage, SMS, Mailer) may be nil; the matching side effects are
// simply skipped.
type Deps struct {
	Logger   *slog.Logger
	DB       *gorm.DB
	Cfg      config.Config
	Provider payments.Provider
	Storage  storage.Storage
	SMS      sms.SMSProvider
	Mailer   mailer.Service
}

func NewRouter(d Deps) *gin.Engine {
	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(d.Logger))
	r.Use(middleware.Recovery(d.Logger))
	r.Use(middleware.ErrorHandler(d.Logger))

	repo := vouchers.NewRepo(d.DB)

	var delivery *sms.DeliveryService
	if d.SMS != nil {
		delivery = sms.NewDeliveryService(d.DB, d.SMS)
	}
	var alerts *email.Alerts
	if d.Mailer != nil {
		alerts = email.NewAlerts(d.Mailer, d.Cfg.SMTP.From, d.Cfg.SMTP.FromName, d.Cfg.AlertEmail)
	}
	fulfill := fulfillment.New(d.Logger, repo, delivery, d.Storage, alerts, d.Cfg.LowStockThreshold)

	purchaseSvc := purchases.NewService(d.DB, d.Provider, d.Cfg.Paystack.CallbackURL)
	purchaseSvc.SetLogger(d.Logger)
	purchaseSvc.SetAfterSale(fulfill.AfterSale)

	webhookSvc := purchases.NewWebhookService(d.DB, purchaseSvc)
	webhookSvc.SetLogger(d.Logger)

	adminSvc := admin.NewService(d.DB)

	purchaseH := handlers.NewPurchaseHandler(d.Logger, purchaseSvc)
	verifyH := handlers.NewVerifyHandler(d.Logger, purchaseSvc)
	retrieveH := handlers.NewRetrieveHandler(repo)
	stockH := handlers.NewStockHandler(repo)
	receiptH := handlers.NewReceiptHandler(repo)
	webhookH := handlers.NewWebhookHandler(d.Logger, d.Provider, webhookSvc)
	adminH := handlers.NewAdminHandler(d.Logger, adminSvc, delivery)

	api := r.Group("/api")
	{
		api.POST("/voucher/purchase", purchaseH.Create)
		api.GET("/voucher/verify", verifyH.Verify)
		api.GET("/vouchers", verifyH.VerifyLegacy)
		api.GET("/voucher/retrieve/:serial", retrieveH.BySerial)
		api.GET("/voucher/retrieve/phone/:phone", retrieveH.ByPhone)
		api.GET("/voucher/stock", stockH.Get)
		api.GET("/voucher/receipt/:serial", receiptH.Download)

		adminGroup := api.Group("/admin", middleware.RequireAdminKey(d.Cfg.AdminKey))
		{
			adminGroup.GET("/stats", adminH.Stats)
			adminGroup.GET("/sales", adminH.Sales)
			adminGroup.POST("/upload", adminH.Upload)
			adminGroup.GET("/sms/:phone", adminH.SMSLogs)
		}
	}

	r.POST("/webhooks/paystack", webhookH.Handle)

	return r
}
