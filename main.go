package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/flowi-app/flowi-server/api"
	"github.com/flowi-app/flowi-server/internal/config"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/operator"
	"github.com/flowi-app/flowi-server/internal/service"
	"github.com/flowi-app/flowi-server/internal/storage"
)

func main() {
	logger := logging.SetupLogging()
	logrus.Info("flowi-server starting")

	envConfig, err := config.ProcessEnvironmentVariables()
	if err != nil {
		logrus.WithError(err).Fatal("config.ProcessEnvironmentVariables")
		return
	}

	dbStorage := storage.NewStorage(envConfig)
	svc := service.NewService(dbStorage)

	delegator := operator.NewOperatorDelegator(dbStorage, 4)
	delegator.Start()

	go func() {
		httpRest := api.Rest{
			Logger:   logger,
			Port:     envConfig.Port,
			Service:  svc,
			Operator: delegator,
		}
		httpRest.Serve()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	logrus.WithField("signal", sig.String()).Info("flowi-server shutting down")
	delegator.Stop()
}
