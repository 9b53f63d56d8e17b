package backend

import (
	"log/slog"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sunar87/foodgram/backend/handlers"
	"github.com/sunar87/foodgram/backend/middleware"
	"github.com/sunar87/foodgram/backend/utils"
	"github.com/sunar87/foodgram/foodgram/config"
	"github.com/sunar87/foodgram/internal/gateways/database/models"
)

// Options configure the HTTP application.
type Options struct {
	// MediaDir, when set, is served under MediaPrefix.
	MediaDir    string
	MediaPrefix string

	ProxyHeader    string
	TrustedProxies []string
}

// NewApp builds the fiber application with every Foodgram route.
func NewApp(webApp *handlers.WebApp, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "Foodgram API",
		ServerHeader: "Foodgram",
		ErrorHandler: middleware.CustomErrorHandler,
		// client IPs come from ProxyHeader only when the peer is a trusted proxy
		ProxyHeader:             opts.ProxyHeader,
		EnableTrustedProxyCheck: true,
		TrustedProxies:          opts.TrustedProxies,
		// base64 images travel inside JSON bodies
		BodyLimit: config.MaxImageBytes*4/3 + 1<<20,
	})

	app.Use(recover.New())
	app.Use(middleware.SecurityHeaders())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestSpeed,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: strings.Join(webApp.Config.CORSOrigins, ","),
		AllowMethods: "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,Authorization",
	}))
	app.Use(middleware.LoggingMiddleware())

	if opts.MediaDir != "" {
		app.Static(opts.MediaPrefix, opts.MediaDir)
	}

	setupRoutes(app, webApp)
	return app
}

func setupRoutes(app *fiber.App, webApp *handlers.WebApp) {
	app.Get("/health", handlers.HealthCheck(webApp))
	app.Get("/s/:token", handlers.ShortLinkRedirect(webApp))

	optional := middleware.OptionalAuth(webApp)
	required := middleware.AuthRequired(webApp)

	api := app.Group("/api")

	auth := api.Group("/auth/token")
	auth.Post("/login", middleware.AuthRateLimit(), handlers.Login(webApp))
	auth.Post("/logout", required, handlers.Logout(webApp))

	api.Get("/tags", handlers.TagsList(webApp))
	api.Get("/tags/:id", handlers.TagsDetail(webApp))
	api.Get("/ingredients", handlers.IngredientsList(webApp))
	api.Get("/ingredients/:id", handlers.IngredientsDetail(webApp))

	rec := api.Group("/recipes")
	rec.Get("/", optional, handlers.RecipesList(webApp))
	rec.Post("/", required, handlers.RecipesCreate(webApp))
	rec.Get("/download_shopping_cart", required, handlers.ShoppingCartDownload(webApp))
	rec.Get("/:id", optional, handlers.RecipesDetail(webApp))
	rec.Patch("/:id", required, handlers.RecipesUpdate(webApp))
	rec.Delete("/:id", required, handlers.RecipesDelete(webApp))
	rec.Get("/:id/get-link", handlers.RecipesGetLink(webApp))
	rec.Post("/:id/favorite", required, handlers.MembershipAdd(webApp, models.KindFavorite))
	rec.Delete("/:id/favorite", required, handlers.MembershipRemove(webApp, models.KindFavorite))
	rec.Post("/:id/shopping_cart", required, handlers.MembershipAdd(webApp, models.KindCart))
	rec.Delete("/:id/shopping_cart", required, handlers.MembershipRemove(webApp, models.KindCart))

	usr := api.Group("/users")
	usr.Get("/", optional, handlers.UsersList(webApp))
	usr.Post("/", handlers.UsersRegister(webApp))
	usr.Get("/me", required, handlers.UsersMe(webApp))
	usr.Put("/me/avatar", required, handlers.AvatarUpdate(webApp))
	usr.Delete("/me/avatar", required, handlers.AvatarDelete(webApp))
	usr.Post("/set_password", required, handlers.UsersSetPassword(webApp))
	usr.Get("/subscriptions", required, handlers.Subscriptions(webApp))
	usr.Get("/:id", optional, handlers.UsersDetail(webApp))
	usr.Post("/:id/subscribe", required, handlers.Subscribe(webApp))
	usr.Delete("/:id/subscribe", required, handlers.Unsubscribe(webApp))

	app.Use(func(c *fiber.Ctx) error {
		slog.Warn("No route matched for request",
			slog.String("method", c.Method()),
			slog.String("path", c.Path()),
			slog.String("ip", utils.GetIPAddress(c)),
		)
		return utils.SendNotFound(c, "The requested endpoint does not exist")
	})
}
