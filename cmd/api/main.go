package main

import (
	"context"
	"os"
	"path"
	"runtime"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
	"github.com/vfg2006/business-advisor-api/infrastructure/repository"
	"github.com/vfg2006/business-advisor-api/internal/api"
	"github.com/vfg2006/business-advisor-api/internal/config"
	"github.com/vfg2006/business-advisor-api/internal/scheduler"
	"github.com/vfg2006/business-advisor-api/internal/usecases/advising"
	"github.com/vfg2006/business-advisor-api/internal/usecases/authenticating"
	"github.com/vfg2006/business-advisor-api/internal/usecases/business"
)

func main() {
	// Inicializa configuração de logs
	configureLogger()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	// Define o nível de log com base na configuração
	logLevel, err := logrus.ParseLevel(cfg.App.LogLevel)
	if err != nil {
		logrus.Warnf("Nível de log inválido: %s, usando 'info'", cfg.App.LogLevel)
		logLevel = logrus.InfoLevel
	}
	logrus.SetLevel(logLevel)
	logrus.Infof("Nível de log configurado para: %s", logLevel)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	pgConn := pgconn(ctx, cfg.Database)
	defer pgConn.Close()

	userRepo := repository.NewUserRepository(pgConn)
	businessRepo := repository.NewBusinessRepository(pgConn)
	recordRepo := repository.NewDailyRecordRepository(pgConn)
	reportRepo := repository.NewReportRepository(pgConn)

	authenticator := authenticating.NewService(userRepo, businessRepo, cfg)

	businessService := business.NewService(businessRepo, recordRepo)

	// Inicializa o serviço de análise com suporte a materialização
	advisorService := advising.NewService(cfg)
	storedAdvisorService := advisorService.(*advising.Service).WithStore(
		recordRepo,
		reportRepo,
	)

	// Inicializa o agendador de materialização de relatórios diários
	reportSyncService := scheduler.NewDailyReportSyncService(
		businessRepo,
		storedAdvisorService, // Implementa Reporter
		cfg,
	)

	// Inicia o agendador em background
	if err := reportSyncService.Start(ctx); err != nil {
		logrus.WithError(err).Error("Erro ao iniciar o agendador de materialização de relatórios")
	} else {
		logrus.Info("Agendador de materialização de relatórios iniciado com sucesso")
	}

	server, err := api.New(
		cfg,
		pgConn,
		storedAdvisorService,
		businessService,
		authenticator,
		reportSyncService,
	)
	if err != nil {
		logrus.Fatal(err)
	}

	if err := server.Run(ctx); err != nil {
		logrus.Error(err)
	}
}

// configureLogger configura o formato e comportamento dos logs
func configureLogger() {
	_, file, _, _ := runtime.Caller(0)
	dir := path.Dir(file)
	os.Chdir(dir)

	logrus.SetFormatter(&logrus.TextFormatter{
		FullTimestamp:   true,
		TimestampFormat: time.RFC3339,
	})
}

// pgconn cria uma conexão com o banco de dados
func pgconn(ctx context.Context, dbConfig config.Database) *postgres.Connection {
	conn, err := postgres.NewConnection(ctx, dbConfig)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao conectar ao PostgreSQL")
	}

	err = conn.Ping(ctx)
	if err != nil {
		logrus.WithError(err).Fatal("Erro ao testar conexão com PostgreSQL")
	}

	logrus.Info("Conexão com PostgreSQL estabelecida com sucesso")
	return conn
}
