package api

import (
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humago"
	"github.com/sirupsen/logrus"

	"github.com/flowi-app/flowi-server/internal/handlers/v1/budget"
	"github.com/flowi-app/flowi-server/internal/handlers/v1/category"
	"github.com/flowi-app/flowi-server/internal/handlers/v1/goal"
	"github.com/flowi-app/flowi-server/internal/handlers/v1/profile"
	"github.com/flowi-app/flowi-server/internal/handlers/v1/report"
	"github.com/flowi-app/flowi-server/internal/handlers/v1/status"
	"github.com/flowi-app/flowi-server/internal/handlers/v1/transaction"
	"github.com/flowi-app/flowi-server/internal/logging"
	"github.com/flowi-app/flowi-server/internal/operator"
	"github.com/flowi-app/flowi-server/internal/service"
)

type Rest struct {
	Logger   *logrus.Logger
	Port     string
	Service  *service.Service
	Operator *operator.OperatorDelegator
}

func (r *Rest) Serve() {
	mux := http.NewServeMux()

	statusHandler := status.NewHandler()
	mux.HandleFunc("/status", logging.LoggingWrapper("Status", r.Logger, statusHandler.Handler))

	humaAPI := humago.New(mux, huma.DefaultConfig("Flowi Server", "1.0.0"))
	humaAPI.UseMiddleware(logging.Middleware(r.Logger))

	transaction.NewCreateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewListTransactionsHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewUpdateTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewDeleteTransactionHandler(r.Service.Transaction).Register(humaAPI)
	transaction.NewExportTransactionsHandler(r.Service.Transaction, r.Service.Category).Register(humaAPI)

	category.NewCreateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewListCategoriesHandler(r.Service.Category).Register(humaAPI)
	category.NewUpdateCategoryHandler(r.Service.Category).Register(humaAPI)
	category.NewDeleteCategoryHandler(r.Service.Category).Register(humaAPI)

	budget.NewUpsertBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewListBudgetsHandler(r.Service.Budget).Register(humaAPI)
	budget.NewUpdateBudgetHandler(r.Service.Budget).Register(humaAPI)
	budget.NewDeleteBudgetHandler(r.Service.Budget).Register(humaAPI)

	goal.NewCreateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewListGoalsHandler(r.Service.Goal).Register(humaAPI)
	goal.NewUpdateGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewDeleteGoalHandler(r.Service.Goal).Register(humaAPI)
	goal.NewAddFundsHandler(r.Operator).Register(humaAPI)

	profile.NewGetProfileHandler(r.Service.Profile).Register(humaAPI)
	profile.NewUpdateProfileHandler(r.Service.Profile).Register(humaAPI)
	profile.NewDeleteDataHandler(r.Operator).Register(humaAPI)

	report.NewDashboardHandler(r.Service.Report, r.Service.Profile).Register(humaAPI)
	report.NewBudgetsHandler(r.Service.Report).Register(humaAPI)
	report.NewGoalsHandler(r.Service.Report).Register(humaAPI)

	server := http.Server{
		Addr:              ":" + r.Port,
		Handler:           mux,
		ReadTimeout:       time.Duration(30) * time.Second,
		WriteTimeout:      time.Duration(30) * time.Second,
		IdleTimeout:       time.Duration(10) * time.Second,
		ReadHeaderTimeout: time.Duration(10) * time.Second,
	}

	r.Logger.Info("HttpServer.Serve.listening")
	err := server.ListenAndServe()
	if err != nil {
		r.Logger.WithError(err).Error("HttpServer.Serve.listen error")
	}
	r.Logger.Info("HttpServer.Serve.shutting down")
}
