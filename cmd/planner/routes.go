package main

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/cors"

	getadmin "cabuya-planner/http-server/admin/get"
	upadmin "cabuya-planner/http-server/admin/update"
	getbacklog "cabuya-planner/http-server/backlog/get"
	report_excel "cabuya-planner/http-server/generate-report/generate-excel"
	delorder "cabuya-planner/http-server/orders/delete"
	getorders "cabuya-planner/http-server/orders/get"
	saveorder "cabuya-planner/http-server/orders/save"
	uporder "cabuya-planner/http-server/orders/update"
	getreports "cabuya-planner/http-server/reports/get"
	savereport "cabuya-planner/http-server/reports/save"
	genschedule "cabuya-planner/http-server/schedule/generate"
	getschedule "cabuya-planner/http-server/schedule/get"
	saveschedule "cabuya-planner/http-server/schedule/save"
	"cabuya-planner/internal/config"
	"cabuya-planner/internal/middleware/auth"
	"cabuya-planner/internal/service/capacity"
	generate_excel "cabuya-planner/internal/service/generate-excel"
	"cabuya-planner/internal/service/planner"
	"cabuya-planner/internal/storage/mysql"
)

func routes(cfg config.Config, log *slog.Logger, storage *mysql.Storage,
	capacityService *capacity.Service, engine *planner.Engine,
	excelService *generate_excel.GenerateExcelService) *chi.Mux {

	router := chi.NewRouter()

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"http://localhost:8081", "http://localhost:5173"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	router.Use(corsHandler.Handler)

	router.Use(middleware.RequestID)
	router.Use(middleware.RealIP)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	// planificación
	router.Post("/api/schedule/generate", genschedule.GeneratePlan(log, capacityService, engine))
	router.Post("/api/schedule/save", saveschedule.SavePlanScenario(log, storage))
	router.Get("/api/schedule/saved", getschedule.GetSavedPlans(log, storage))

	router.Get("/api/backlog", getbacklog.GetBacklog(log, capacityService))

	// pedidos manuales
	router.Get("/api/orders", getorders.GetOrders(log, storage))
	router.Post("/api/orders", saveorder.SaveOrder(log, storage))
	router.Put("/api/orders/{id}/produced", uporder.UpdateOrderProduced(log, storage))
	router.Delete("/api/orders/{id}", delorder.DeleteOrder(log, storage))

	// novedades de máquina
	router.Get("/api/reports", getreports.GetMachineReports(log, storage))
	router.Post("/api/reports", savereport.SaveMachineReport(log, storage))

	router.Get("/api/report/excel", report_excel.GenerateReportExcel(log, capacityService, engine, excelService))

	adminRouter := chi.NewRouter()
	adminRouter.Use(auth.BasicAuth(cfg.AdminLogin, cfg.AdminPass))

	adminRouter.Get("/deniers", getadmin.GetDeniersAdmin(log, storage))
	adminRouter.Get("/machines", getadmin.GetMachineConfigsAdmin(log, storage))
	adminRouter.Post("/machines", upadmin.UpsertMachineConfigAdmin(log, storage))
	adminRouter.Get("/rewinders", getadmin.GetRewinderConfigsAdmin(log, storage))
	adminRouter.Post("/rewinders", upadmin.UpsertRewinderConfigAdmin(log, storage))
	adminRouter.Get("/shifts", getadmin.GetShiftsAdmin(log, storage))
	adminRouter.Post("/shifts", upadmin.UpsertShiftAdmin(log, storage))
	adminRouter.Get("/products", getadmin.GetProductsAdmin(log, storage))
	adminRouter.Put("/products/{codigo}", upadmin.UpdateProductAdmin(log, storage))

	router.Mount("/api/admin", adminRouter)

	return router
}
