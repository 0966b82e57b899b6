package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/northhaul/northhaul-backend/api/controllers"
	"github.com/northhaul/northhaul-backend/api/middleware"
	"github.com/northhaul/northhaul-backend/internal/auth"
	"github.com/northhaul/northhaul-backend/internal/blog"
	"github.com/northhaul/northhaul-backend/internal/jobs"
	"github.com/northhaul/northhaul-backend/internal/orders"
	"github.com/northhaul/northhaul-backend/internal/products"
	"github.com/northhaul/northhaul-backend/internal/stats"
	"github.com/northhaul/northhaul-backend/internal/testimonials"
	"github.com/northhaul/northhaul-backend/internal/warehouse"
	"github.com/northhaul/northhaul-backend/pkg/auth/session"
	"github.com/northhaul/northhaul-backend/pkg/config"
	"github.com/northhaul/northhaul-backend/pkg/logger"
)

// Services bundles the wired domain services the router mounts.
type Services struct {
	Auth         auth.Service
	Jobs         jobs.Service
	Blog         blog.Service
	Testimonials testimonials.Service
	Products     products.Service
	Orders       orders.Service
	Warehouse    warehouse.Service
	Stats        stats.Service
}

// NewRouter wires the public surface and the session-gated admin surface.
func NewRouter(
	cfg *config.Config,
	logg *logger.Logger,
	dbPinger controllers.Pinger,
	cachePinger controllers.Pinger,
	sessions session.Checker,
	svcs Services,
) http.Handler {
	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	adminOnly := middleware.AdminAuth(cfg.Session, sessions, logg)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, dbPinger, cachePinger))
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/jobs", func(r chi.Router) {
			r.Get("/", controllers.ListJobs(svcs.Jobs, logg))
			r.Get("/featured", controllers.ListFeaturedJobs(svcs.Jobs, logg))
			r.Get("/categories", controllers.JobCategories(svcs.Jobs, logg))
			r.Post("/submit", controllers.SubmitJob(svcs.Jobs, logg))
			r.Post("/{jobId}/apply", controllers.ApplyToJob(svcs.Jobs, logg))

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/pending", controllers.ListPendingJobs(svcs.Jobs, logg))
				r.Post("/", controllers.CreateJob(svcs.Jobs, logg))
				r.Patch("/{id}", controllers.UpdateJob(svcs.Jobs, logg))
				r.Patch("/{id}/status", controllers.UpdateJobStatus(svcs.Jobs, logg))
				r.Delete("/{id}", controllers.DeleteJob(svcs.Jobs, logg))
				r.Get("/{jobId}/applications", controllers.ListJobApplications(svcs.Jobs, logg))
			})

			r.Get("/{id}", controllers.GetJob(svcs.Jobs, logg))
		})

		r.With(adminOnly).Get("/applications", controllers.ListAllApplications(svcs.Jobs, logg))
		r.With(adminOnly).Patch("/applications/{id}/status", controllers.UpdateApplicationStatus(svcs.Jobs, logg))

		r.Route("/blog", func(r chi.Router) {
			r.Get("/", controllers.ListPublishedPosts(svcs.Blog, logg))
			r.Get("/{slug}", controllers.GetPublishedPost(svcs.Blog, logg))
		})

		r.Route("/testimonials", func(r chi.Router) {
			r.Get("/", controllers.ListTestimonials(svcs.Testimonials, logg))

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/", controllers.CreateTestimonial(svcs.Testimonials, logg))
				r.Patch("/{id}", controllers.UpdateTestimonial(svcs.Testimonials, logg))
				r.Delete("/{id}", controllers.DeleteTestimonial(svcs.Testimonials, logg))
			})
		})

		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(svcs.Products, logg))
			r.Get("/{id}", controllers.GetProduct(svcs.Products, logg))

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/", controllers.CreateProduct(svcs.Products, logg))
				r.Patch("/{id}", controllers.UpdateProduct(svcs.Products, logg))
				r.Delete("/{id}", controllers.DeleteProduct(svcs.Products, logg))
			})
		})

		r.Route("/orders", func(r chi.Router) {
			r.Post("/", controllers.CreateOrder(svcs.Orders, logg))

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/", controllers.ListOrders(svcs.Orders, logg))
				r.Get("/{id}", controllers.GetOrder(svcs.Orders, logg))
				r.Patch("/{id}/status", controllers.UpdateOrderStatus(svcs.Orders, logg))
			})
		})

		r.Route("/warehouse/requests", func(r chi.Router) {
			r.Post("/", controllers.CreateWarehouseRequest(svcs.Warehouse, logg))

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Get("/", controllers.ListWarehouseRequests(svcs.Warehouse, logg))
				r.Patch("/{id}/status", controllers.UpdateWarehouseRequestStatus(svcs.Warehouse, logg))
			})
		})

		r.Get("/stats", controllers.PublicStats(svcs.Stats, logg))

		r.Route("/admin", func(r chi.Router) {
			r.Post("/login", controllers.AdminLogin(svcs.Auth, cfg.Session, logg))

			r.Group(func(r chi.Router) {
				r.Use(adminOnly)
				r.Post("/logout", controllers.AdminLogout(svcs.Auth, cfg.Session, logg))
				r.Get("/stats", controllers.DashboardStats(svcs.Stats, logg))

				r.Route("/blog", func(r chi.Router) {
					r.Get("/", controllers.ListAllPosts(svcs.Blog, logg))
					r.Post("/", controllers.CreatePost(svcs.Blog, logg))
					r.Get("/{id}", controllers.GetPost(svcs.Blog, logg))
					r.Patch("/{id}", controllers.UpdatePost(svcs.Blog, logg))
					r.Delete("/{id}", controllers.DeletePost(svcs.Blog, logg))
				})
			})
		})
	})

	return r
}
