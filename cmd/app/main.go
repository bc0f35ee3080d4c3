package main

import (
	"context"
	"errors"
	"net"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
	"go.uber.org/zap"

	"mealplanner/cmd/fx/config_fx"
	"mealplanner/cmd/fx/controllers_fx"
	"mealplanner/cmd/fx/db_fx"
	"mealplanner/cmd/fx/halls_fx"
	"mealplanner/cmd/fx/llm_fx"
	"mealplanner/cmd/fx/meal_plan_fx"
	"mealplanner/cmd/fx/menu_fx"
	"mealplanner/cmd/fx/profile_fx"
	"mealplanner/internal/api"
	"mealplanner/internal/api/controllers"
	"mealplanner/internal/config"
)

func main() {
	app := fx.New(
		fx.WithLogger(func(log *zap.Logger) fxevent.Logger {
			return &fxevent.ZapLogger{Logger: log}
		}),
		config_fx.Module,
		db_fx.Module,
		halls_fx.Module,
		menu_fx.Module,
		profile_fx.Module,
		llm_fx.Module,
		meal_plan_fx.Module,
		controllers_fx.Module,
		fx.Provide(ProvideEngine),
		fx.Invoke(StartServer),
	)

	app.Run()
}

func ProvideEngine(
	cfg *config.Config,
	log *zap.Logger,
	mealPlanController *controllers.MealPlanController,
	hallsController *controllers.HallsController) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	return api.ProvideRouter(log, mealPlanController, hallsController)
}

func StartServer(lc fx.Lifecycle, cfg *config.Config, log *zap.Logger, engine *gin.Engine) {
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			log.Info("starting HTTP server", zap.String("addr", srv.Addr))
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					log.Fatal("http server stopped", zap.Error(err))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("stopping HTTP server")
			return srv.Shutdown(ctx)
		},
	})
}
