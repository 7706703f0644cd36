package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"Volunteer_Hub/internal/config"
	"Volunteer_Hub/internal/handler"
	"Volunteer_Hub/internal/pkg"
	"Volunteer_Hub/internal/repository/mongodb"
	redisrepo "Volunteer_Hub/internal/repository/redis"
	"Volunteer_Hub/internal/router"
	"Volunteer_Hub/internal/service"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	configPath := flag.String("config", "config.yaml", "配置文件路径")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}

	log := newLogger(cfg.Log.Level)
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// mongo
	connCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	client, db, err := mongodb.Connect(connCtx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("mongo connect failed", zap.Error(err))
	}
	defer client.Disconnect(context.Background())
	if err := mongodb.EnsureIndexes(connCtx, db); err != nil {
		log.Fatal("mongo index init failed", zap.Error(err))
	}

	// redis，保存单活跃登录态
	rdb, err := redisrepo.Init(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		log.Fatal("redis connect failed", zap.Error(err))
	}
	sessions := redisrepo.NewSessionRepository(rdb, cfg.AccessTTL())

	pkg.ConfigureJWT(cfg.JWT.AccessSecret, cfg.JWT.RefreshSecret, cfg.AccessTTL(), cfg.RefreshTTL())

	// 邮件，host 未配置时跳过
	var mailer service.Mailer
	if cfg.SMTP.Host != "" {
		smtp := pkg.SMTPConfig{
			Host:     cfg.SMTP.Host,
			Port:     cfg.SMTP.Port,
			Username: cfg.SMTP.Username,
			Password: cfg.SMTP.Password,
			From:     cfg.SMTP.From,
		}
		mailer = func(to, subject, htmlBody string) error {
			return pkg.SendEmail(smtp, to, subject, htmlBody)
		}
	}

	// repository
	users := mongodb.NewUserRepository(db)
	campaigns := mongodb.NewCampaignRepository(db)
	activities := mongodb.NewActivityRepository(db)
	tasks := mongodb.NewTaskRepository(db)
	members := mongodb.NewMemberRepository(db)
	outbox := mongodb.NewOutboxRepository(db)

	// outbox 投递，kafka 未配置时退化为日志
	sender := service.LogSender(log)
	if len(cfg.Kafka.Brokers) > 0 {
		producer, err := pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: cfg.Kafka.Brokers, Topic: cfg.Kafka.Topic})
		if err != nil {
			log.Fatal("kafka producer init failed", zap.Error(err))
		}
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}
	go service.NewOutboxRelayer(outbox, sender, log).Run(ctx)

	// service
	authSvc := service.NewAuthService(users, sessions, mailer, log)
	campaignSvc := service.NewCampaignService(campaigns, activities, tasks, members, users, outbox, cfg.Campaign.DeletePolicy, log)
	activitySvc := service.NewActivityService(activities, campaigns, users, outbox, log)
	taskSvc := service.NewTaskService(tasks, campaigns, users, log)
	memberSvc := service.NewMemberService(members, users, campaigns, outbox, log)

	r := router.InitRouter(router.Handlers{
		Auth:     handler.NewAuthHandler(authSvc, log),
		Campaign: handler.NewCampaignHandler(campaignSvc, log),
		Activity: handler.NewActivityHandler(activitySvc, log),
		Task:     handler.NewTaskHandler(taskSvc, log),
		Member:   handler.NewMemberHandler(memberSvc, log),
	}, users, sessions, log)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: r,
	}

	go func() {
		log.Info("server started", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("server stopped unexpectedly", zap.Error(err))
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("shutdown failed", zap.Error(err))
	}
}

func newLogger(level string) *zap.Logger {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		lvl = zapcore.InfoLevel
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	log, err := zcfg.Build()
	if err != nil {
		panic(err)
	}
	return log
}
