package router

import (
	"github.com/blues/tfs/internal/auth"
	"github.com/blues/tfs/internal/config"
	"github.com/blues/tfs/internal/handler"
	"github.com/blues/tfs/internal/logic"
	"github.com/blues/tfs/internal/mailer"
	"github.com/blues/tfs/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"gorm.io/gorm"
)

func Setup(db *gorm.DB, sender mailer.Sender, cfg *config.Config) *gin.Engine {
	r := gin.Default()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "truefund-service",
		})
	})

	// 指标
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	authService := auth.NewService(db, cfg.Auth.JWTSecret, cfg.Auth.Issuer)

	// API路由组
	api := r.Group("/api")
	{
		// 活动相关路由
		campaignHandler := handler.NewCampaignHandler(db)
		campaigns := api.Group("/campaigns")
		{
			campaigns.GET("", campaignHandler.GetCampaigns)
			campaigns.POST("", middleware.RequireAuth(authService), campaignHandler.CreateCampaign)
			campaigns.GET("/my", middleware.RequireAuth(authService), campaignHandler.GetMyCampaigns)
			campaigns.GET("/:id", campaignHandler.GetCampaign)
		}

		// 捐赠相关路由
		donationHandler := handler.NewDonationHandler(db)
		donations := api.Group("/donations")
		{
			donations.GET("", donationHandler.GetDonations)
			donations.POST("", middleware.OptionalAuth(authService), donationHandler.CreateDonation)
			donations.GET("/my", middleware.RequireAuth(authService), donationHandler.GetMyDonations)
		}

		// 评价相关路由
		reviewHandler := handler.NewReviewHandler(db)
		reviews := api.Group("/reviews")
		{
			reviews.GET("", reviewHandler.GetReviews)
			reviews.POST("", middleware.OptionalAuth(authService), reviewHandler.CreateReview)
		}

		// 工单相关路由
		ticketHandler := handler.NewTicketHandler(db)
		tickets := api.Group("/tickets", middleware.RequireAuth(authService))
		{
			tickets.GET("", ticketHandler.GetMyTickets)
			tickets.POST("", ticketHandler.CreateTicket)
		}

		// NGO认证相关路由
		ngoHandler := handler.NewNgoVerificationHandler(db)
		ngoVerifications := api.Group("/ngo-verifications", middleware.RequireAuth(authService))
		{
			ngoVerifications.GET("", ngoHandler.GetMyVerifications)
			ngoVerifications.POST("", ngoHandler.CreateVerification)
		}

		// 管理员路由
		admin := api.Group("/admin", middleware.RequireAuth(authService), middleware.RequireAdmin())
		{
			admin.GET("/tickets", ticketHandler.GetTickets)
			admin.GET("/tickets/:id", ticketHandler.GetTicket)
			admin.PATCH("/tickets/:id", ticketHandler.UpdateTicket)
			admin.GET("/ngo-verifications", ngoHandler.GetVerifications)
			admin.PATCH("/ngo-verifications/:id", ngoHandler.ReviewVerification)
		}

		// 平台统计
		statsHandler := handler.NewStatsHandler(db)
		api.GET("/stats", statsHandler.GetPlatformStats)

		// 医院认证
		hospitalLogic := logic.NewHospitalVerificationLogic(db, sender, cfg.Mail.VerifyBase)
		hospitalHandler := handler.NewHospitalHandler(hospitalLogic)
		api.POST("/send-hospital-verification", middleware.RequireAuth(authService), hospitalHandler.SendVerification)
		api.GET("/verify-hospital", hospitalHandler.VerifyHospital)
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, PATCH, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
