package app

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	anamnesisHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/anamnesis"
	catalogHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/catalog"
	clientsHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/clients"
	createAppointmentHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/delete_appointment"
	financeHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/finance"
	getAgendaHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/get_agenda"
	getAppointmentHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/get_appointment"
	listAppointmentsHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/list_appointments"
	moveAppointmentHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/move_appointment"
	notificationsHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/notifications"
	productsHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/products"
	professionalsHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/professionals"
	profileHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/profile"
	statusColorsHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/status_colors"
	updateStatusHandler "github.com/m04kA/SMC-SalonAgenda/internal/api/handlers/update_appointment_status"
	"github.com/m04kA/SMC-SalonAgenda/internal/api/middleware"
	anamnesisService "github.com/m04kA/SMC-SalonAgenda/internal/service/anamnesis"
	appointmentsService "github.com/m04kA/SMC-SalonAgenda/internal/service/appointments"
	catalogService "github.com/m04kA/SMC-SalonAgenda/internal/service/catalog"
	clientsService "github.com/m04kA/SMC-SalonAgenda/internal/service/clients"
	financeService "github.com/m04kA/SMC-SalonAgenda/internal/service/finance"
	productsService "github.com/m04kA/SMC-SalonAgenda/internal/service/products"
	professionalsService "github.com/m04kA/SMC-SalonAgenda/internal/service/professionals"
	profileService "github.com/m04kA/SMC-SalonAgenda/internal/service/profile"
	"github.com/m04kA/SMC-SalonAgenda/internal/usecase/create_appointment"
	"github.com/m04kA/SMC-SalonAgenda/internal/usecase/get_agenda"
	"github.com/m04kA/SMC-SalonAgenda/internal/usecase/move_appointment"
	"github.com/m04kA/SMC-SalonAgenda/internal/usecase/update_appointment_status"
	"github.com/m04kA/SMC-SalonAgenda/pkg/txmanager"
)

func (a *App) buildRouter(txManager *txmanager.TransactionManager) *mux.Router {
	log := a.log
	repos := a.repos

	// Инициализируем сервисы
	appointmentsSvc := appointmentsService.NewService(repos.appointments, a.board, a.center, log)
	clientsSvc := clientsService.NewService(repos.clients, log)
	professionalsSvc := professionalsService.NewService(repos.professionals, a.storage, log)
	catalogSvc := catalogService.NewService(repos.catalog, log)
	productsSvc := productsService.NewService(repos.products, a.storage, log)
	financeSvc := financeService.NewService(repos.finance, log)
	profileSvc := profileService.NewService(repos.profiles, a.storage, log)
	anamnesisSvc := anamnesisService.NewService(repos.anamnesis, repos.clients, log)

	// Инициализируем use cases
	getAgendaUC := get_agenda.NewUseCase(a.board, a.layout, repos.appointments, repos.professionals, log)
	createAppointmentUC := create_appointment.NewUseCase(
		a.board, a.layout,
		repos.appointments, repos.professionals, repos.clients, repos.catalog,
		txManager, a.center, log,
	)
	moveAppointmentUC := move_appointment.NewUseCase(
		a.board, a.layout,
		repos.appointments, repos.professionals,
		txManager, a.center, a.metrics, log,
	)
	updateStatusUC := update_appointment_status.NewUseCase(a.board, repos.appointments, a.center, a.metrics, log)

	// Инициализируем handlers
	getAgenda := getAgendaHandler.NewHandler(getAgendaUC, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUC, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	moveAppointment := moveAppointmentHandler.NewHandler(moveAppointmentUC, log)
	updateStatus := updateStatusHandler.NewHandler(updateStatusUC, log)
	statusColors := statusColorsHandler.NewHandler()

	clients := clientsHandler.NewHandler(clientsSvc, log)
	professionals := professionalsHandler.NewHandler(professionalsSvc, log)
	catalog := catalogHandler.NewHandler(catalogSvc, log)
	products := productsHandler.NewHandler(productsSvc, log)
	finance := financeHandler.NewHandler(financeSvc, log)
	profile := profileHandler.NewHandler(profileSvc, log)
	anamnesis := anamnesisHandler.NewHandler(anamnesisSvc, log)
	notifications := notificationsHandler.NewHandler(a.center)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recover(log))
	r.Use(middleware.AccessLog(log))

	if a.metrics != nil {
		r.Use(middleware.MetricsMiddleware(a.metrics))
		r.Handle(a.cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Расписание
	api.HandleFunc("/agenda", getAgenda.Handle).Methods(http.MethodGet)
	api.HandleFunc("/status-colors", statusColors.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", deleteAppointment.Handle).Methods(http.MethodDelete)
	api.HandleFunc("/appointments/{id}/move", moveAppointment.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/appointments/{id}/status", updateStatus.Handle).Methods(http.MethodPatch)

	// Клиенты
	api.HandleFunc("/clients", clients.List).Methods(http.MethodGet)
	api.HandleFunc("/clients", clients.Create).Methods(http.MethodPost)
	api.HandleFunc("/clients/{id}", clients.Get).Methods(http.MethodGet)
	api.HandleFunc("/clients/{id}", clients.Update).Methods(http.MethodPut)
	api.HandleFunc("/clients/{id}", clients.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/clients/{id}/anamnesis", anamnesis.ListClientResponses).Methods(http.MethodGet)

	// Мастера
	api.HandleFunc("/professionals", professionals.List).Methods(http.MethodGet)
	api.HandleFunc("/professionals", professionals.Create).Methods(http.MethodPost)
	api.HandleFunc("/professionals/{id}", professionals.Get).Methods(http.MethodGet)
	api.HandleFunc("/professionals/{id}", professionals.Update).Methods(http.MethodPut)
	api.HandleFunc("/professionals/{id}", professionals.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/professionals/{id}/toggle-active", professionals.ToggleActive).Methods(http.MethodPatch)
	api.HandleFunc("/professionals/{id}/avatar", professionals.UploadAvatar).Methods(http.MethodPut)

	// Услуги
	api.HandleFunc("/services", catalog.List).Methods(http.MethodGet)
	api.HandleFunc("/services", catalog.Create).Methods(http.MethodPost)
	api.HandleFunc("/services/{id}", catalog.Get).Methods(http.MethodGet)
	api.HandleFunc("/services/{id}", catalog.Update).Methods(http.MethodPut)
	api.HandleFunc("/services/{id}", catalog.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/services/{id}/toggle-active", catalog.ToggleActive).Methods(http.MethodPatch)

	// Товары
	api.HandleFunc("/products", products.List).Methods(http.MethodGet)
	api.HandleFunc("/products", products.Create).Methods(http.MethodPost)
	api.HandleFunc("/products/{id}", products.Get).Methods(http.MethodGet)
	api.HandleFunc("/products/{id}", products.Update).Methods(http.MethodPut)
	api.HandleFunc("/products/{id}", products.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/products/{id}/toggle-active", products.ToggleActive).Methods(http.MethodPatch)
	api.HandleFunc("/products/{id}/image", products.UploadImage).Methods(http.MethodPut)

	// Финансы: фиксированные пути раньше /{id}
	api.HandleFunc("/financial-entries/summary", finance.Summary).Methods(http.MethodGet)
	api.HandleFunc("/financial-entries/export.csv", finance.ExportCSV).Methods(http.MethodGet)
	api.HandleFunc("/financial-entries", finance.List).Methods(http.MethodGet)
	api.HandleFunc("/financial-entries", finance.Create).Methods(http.MethodPost)
	api.HandleFunc("/financial-entries/{id}", finance.Get).Methods(http.MethodGet)
	api.HandleFunc("/financial-entries/{id}", finance.Update).Methods(http.MethodPut)
	api.HandleFunc("/financial-entries/{id}", finance.Delete).Methods(http.MethodDelete)

	// Анамнез
	api.HandleFunc("/anamnesis/templates", anamnesis.ListTemplates).Methods(http.MethodGet)
	api.HandleFunc("/anamnesis/templates", anamnesis.CreateTemplate).Methods(http.MethodPost)
	api.HandleFunc("/anamnesis/templates/{id}", anamnesis.GetTemplate).Methods(http.MethodGet)
	api.HandleFunc("/anamnesis/responses", anamnesis.SubmitResponse).Methods(http.MethodPost)

	// Уведомления
	api.HandleFunc("/notifications", notifications.List).Methods(http.MethodGet)
	api.HandleFunc("/notifications/read", notifications.MarkRead).Methods(http.MethodPost)
	api.HandleFunc("/notifications", notifications.Clear).Methods(http.MethodDelete)

	// Защищенные маршруты (требуют X-User-ID)
	protected := api.PathPrefix("/profile").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("", profile.Get).Methods(http.MethodGet)
	protected.HandleFunc("", profile.Update).Methods(http.MethodPut)
	protected.HandleFunc("/avatar", profile.UploadAvatar).Methods(http.MethodPut)

	return r
}
