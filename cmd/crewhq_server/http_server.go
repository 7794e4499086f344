package main

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/crewhq/crewhq/internal/auth"
	"github.com/crewhq/crewhq/internal/workspace"
	"github.com/crewhq/crewhq/pkg/log"
)

type HttpApi struct {
	f    *fiber.App
	addr string
}

func NewHttpApi(app *App) *HttpApi {
	api := &HttpApi{addr: app.config.apiAddr}

	api.f = fiber.New(fiber.Config{
		EnablePrintRoutes:     false,
		DisableStartupMessage: true,
		BodyLimit:             64 * 1024 * 1024,
	})

	api.f.Use(log.NewFiberLogger(&log.LoggerConfig{Name: "api", DoMetrics: true, UserGetter: apiUser}))

	api.f.Get("/metrics", getMetricsHandler())
	api.f.Static("/files", app.config.filesDir)

	api.f.Post("/api/auth/register", getRegisterHandler(app))
	api.f.Post("/api/auth/login", getLoginHandler(app))

	g := api.f.Group("/api", auth.Middleware(app.issuer))

	g.Get("/profile", getProfileHandler(app))
	g.Patch("/profile", getProfilePatchHandler(app))
	g.Post("/profile/avatar", getAvatarPostHandler(app))
	g.Get("/dashboard", getDashboardHandler(app))

	g.Get("/missions", getMissionsHandler(app))
	g.Post("/missions", getMissionPostHandler(app))
	g.Get("/missions/joined", getJoinedMissionsHandler(app))
	g.Get("/missions/created", getCreatedMissionsHandler(app))
	g.Get("/missions/:id", getMissionHandler(app))
	g.Patch("/missions/:id", getMissionPatchHandler(app))
	g.Delete("/missions/:id", getMissionDeleteHandler(app))

	g.Post("/missions/:id/join", getJoinHandler(app))
	g.Post("/missions/:id/leave", getLeaveHandler(app))
	g.Get("/missions/:id/crew", getCrewHandler(app))
	g.Put("/missions/:id/crew/:brawler/role", getRolePutHandler(app))
	g.Delete("/missions/:id/crew/:brawler", getKickHandler(app))

	g.Get("/missions/:id/tasks", getMissionTasksHandler(app))
	g.Post("/missions/:id/tasks", getTaskPostHandler(app))
	g.Get("/tasks/assigned", getAssignedTasksHandler(app))
	g.Patch("/tasks/:id", getTaskPatchHandler(app))
	g.Delete("/tasks/:id", getTaskDeleteHandler(app))
	g.Get("/tasks/:id/submission", getTaskSubmissionHandler(app))

	g.Get("/missions/:id/submissions", getSubmissionsHandler(app))
	g.Post("/missions/:id/submissions", getSubmissionPostHandler(app))
	g.Patch("/submissions/:id", getSubmissionPatchHandler(app))
	g.Delete("/submissions/:id", getSubmissionDeleteHandler(app))

	return api
}

func (api *HttpApi) Listen() error {
	return api.f.Listen(api.addr)
}

func (api *HttpApi) Shutdown() error {
	return api.f.Shutdown()
}

func getMetricsHandler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}

func apiUser(ctx *fiber.Ctx) string {
	if id := auth.UserID(ctx); id != 0 {
		return strconv.FormatUint(uint64(id), 10)
	}

	return "-"
}

// sendError maps the workspace failure taxonomy onto HTTP statuses.
func sendError(ctx *fiber.Ctx, err error) error {
	status := fiber.StatusInternalServerError

	switch {
	case errors.Is(err, workspace.ErrNotFound), errors.Is(err, workspace.ErrNotMember):
		status = fiber.StatusNotFound
	case errors.Is(err, workspace.ErrForbidden):
		status = fiber.StatusForbidden
	case errors.Is(err, workspace.ErrInvalidState), errors.Is(err, workspace.ErrCapacity):
		status = fiber.StatusConflict
	case errors.Is(err, workspace.ErrUpstream):
		status = fiber.StatusBadGateway
	}

	return ctx.Status(status).JSON(fiber.Map{"error": err.Error()})
}
