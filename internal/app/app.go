package app

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-SalonAgenda/internal/agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/config"
	"github.com/m04kA/SMC-SalonAgenda/internal/infra/snapshot"
	anamnesisRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/anamnesis"
	appointmentRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/appointment"
	catalogRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/catalog"
	clientRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/client"
	financeRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/finance"
	productRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/product"
	professionalRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/professional"
	profileRepo "github.com/m04kA/SMC-SalonAgenda/internal/infra/storage/profile"
	"github.com/m04kA/SMC-SalonAgenda/internal/integrations/objectstorage"
	"github.com/m04kA/SMC-SalonAgenda/internal/notify"
	"github.com/m04kA/SMC-SalonAgenda/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonAgenda/pkg/logger"
	"github.com/m04kA/SMC-SalonAgenda/pkg/metrics"
	"github.com/m04kA/SMC-SalonAgenda/pkg/txmanager"
	"github.com/m04kA/SMC-SalonAgenda/pkg/types"
)

const startupTimeout = 5 * time.Second

// repositories postgres репозитории приложения
type repositories struct {
	appointments  *appointmentRepo.Repository
	clients       *clientRepo.Repository
	professionals *professionalRepo.Repository
	catalog       *catalogRepo.Repository
	products      *productRepo.Repository
	finance       *financeRepo.Repository
	profiles      *profileRepo.Repository
	anamnesis     *anamnesisRepo.Repository
}

// App состояние приложения: все зависимости создаются в New и освобождаются в Close
type App struct {
	cfg     *config.Config
	log     *logger.Logger
	metrics *metrics.Metrics

	db     *sql.DB
	redis  *redis.Client
	stopCh chan struct{}

	board   *agenda.Board
	layout  agenda.Layout
	center  *notify.Center
	repos   repositories
	storage *objectstorage.Client

	router *mux.Router
}

// New собирает приложение по конфигурации
func New(cfg *config.Config, log *logger.Logger) (*App, error) {
	a := &App{cfg: cfg, log: log, stopCh: make(chan struct{})}

	if cfg.Metrics.Enabled {
		a.metrics = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	if err := a.openDatabase(); err != nil {
		a.Close()
		return nil, err
	}

	wrappedDB := dbmetrics.WrapWithDefault(a.db, a.metrics, a.stopCh)
	a.repos = repositories{
		appointments:  appointmentRepo.NewRepository(wrappedDB),
		clients:       clientRepo.NewRepository(wrappedDB),
		professionals: professionalRepo.NewRepository(wrappedDB),
		catalog:       catalogRepo.NewRepository(wrappedDB),
		products:      productRepo.NewRepository(wrappedDB),
		finance:       financeRepo.NewRepository(wrappedDB),
		profiles:      profileRepo.NewRepository(wrappedDB),
		anamnesis:     anamnesisRepo.NewRepository(wrappedDB),
	}
	txManager := txmanager.NewTransactionManager(wrappedDB)

	if err := a.buildBoard(); err != nil {
		a.Close()
		return nil, err
	}

	a.center = notify.NewCenter(cfg.Agenda.Notifications)
	a.storage = objectstorage.NewClient(
		cfg.Storage.URL,
		cfg.Storage.PublicURL,
		cfg.Storage.APIKey,
		cfg.Storage.MaxImageSize,
		time.Duration(cfg.Storage.Timeout)*time.Second,
		log,
	)

	a.router = a.buildRouter(txManager)
	return a, nil
}

func (a *App) openDatabase() error {
	db, err := sql.Open("postgres", a.cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	a.db = db

	db.SetMaxOpenConns(a.cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(a.cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(a.cfg.Database.ConnMaxLifetime) * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	a.log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		a.cfg.Database.Host, a.cfg.Database.Port, a.cfg.Database.DBName)
	return nil
}

// buildBoard создает доску расписания и поднимает сохраненный снимок
func (a *App) buildBoard() error {
	policy, err := agenda.ParseCollisionPolicy(a.cfg.Agenda.CollisionPolicy)
	if err != nil {
		return err
	}

	start, err := types.NewTimeStringFromString(a.cfg.Agenda.DayStart)
	if err != nil {
		return fmt.Errorf("agenda.day_start: %w", err)
	}
	end, err := types.NewTimeStringFromString(a.cfg.Agenda.DayEnd)
	if err != nil {
		return fmt.Errorf("agenda.day_end: %w", err)
	}
	a.layout, err = agenda.NewLayout(start, end, a.cfg.Agenda.SlotMinutes, a.cfg.Agenda.Professionals)
	if err != nil {
		return err
	}

	store := a.snapshotStore()

	var boardMetrics agenda.Metrics
	if a.metrics != nil {
		boardMetrics = a.metrics
	}
	a.board = agenda.NewBoard(policy, store, boardMetrics, a.log)

	ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
	defer cancel()
	a.board.Restore(ctx)

	a.log.Info("Agenda ready: policy=%s, slots=%d, snapshot=%s",
		policy, len(a.layout.Slots), a.cfg.Agenda.SnapshotBackend)
	return nil
}

// snapshotStore выбирает хранилище снимка; недоступный redis не мешает старту
func (a *App) snapshotStore() agenda.SnapshotStore {
	switch a.cfg.Agenda.SnapshotBackend {
	case config.SnapshotBackendRedis:
		a.redis = redis.NewClient(&redis.Options{
			Addr:     a.cfg.Redis.Addr,
			Password: a.cfg.Redis.Password,
			DB:       a.cfg.Redis.DB,
		})
		ctx, cancel := context.WithTimeout(context.Background(), startupTimeout)
		defer cancel()
		if err := a.redis.Ping(ctx).Err(); err != nil {
			a.log.Warn("Redis is not reachable at %s, snapshot writes will fail: %v", a.cfg.Redis.Addr, err)
		}
		return snapshot.NewRedisStore(a.redis, a.cfg.Agenda.SnapshotKey)
	case config.SnapshotBackendFile:
		return snapshot.NewFileStore(a.cfg.Agenda.SnapshotPath)
	default:
		return nil
	}
}

// Router возвращает HTTP обработчик приложения
func (a *App) Router() http.Handler {
	return a.router
}

// Close освобождает ресурсы в обратном порядке
func (a *App) Close() {
	select {
	case <-a.stopCh:
	default:
		close(a.stopCh)
	}

	// Доска дописывает последний снимок до закрытия redis
	if a.board != nil {
		a.board.Close()
	}
	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("Failed to close redis client: %v", err)
		}
	}
	if a.db != nil {
		if err := a.db.Close(); err != nil {
			a.log.Error("Failed to close database: %v", err)
		}
	}
}
