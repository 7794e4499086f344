package main

import (
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/crewhq/crewhq/internal/auth"
	"github.com/crewhq/crewhq/internal/workspace"
)

// paramUint parses a positive integer path parameter. Malformed or zero
// values are rejected here so a bad id can never widen a query.
func paramUint(ctx *fiber.Ctx, name string) (uint, error) {
	n, err := strconv.ParseUint(ctx.Params(name), 10, 64)

	if err != nil || n == 0 {
		return 0, fmt.Errorf("bad %s", name)
	}

	return uint(n), nil
}

func badParam(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
}

func getMissionsHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		actor := auth.UserID(ctx)

		return ctx.JSON(app.engine.ListMissions(ctx.Query("status"), ctx.Query("name"), actor))
	}
}

func getMissionHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		m, err := app.engine.GetMission(id, auth.UserID(ctx))

		if err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(m)
	}
}

func getMissionPostHandler(app *App) fiber.Handler {
	type addMissionReq struct {
		Name        string `json:"name"`
		Description string `json:"description"`
		MaxMembers  int    `json:"max_members"`
		Status      string `json:"status"`
	}

	return func(ctx *fiber.Ctx) error {
		var req addMissionReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		m, err := app.engine.CreateMission(auth.UserID(ctx), &workspace.AddMission{
			Name:        req.Name,
			Description: req.Description,
			MaxMembers:  req.MaxMembers,
			Status:      req.Status,
		})

		if err != nil {
			return sendError(ctx, err)
		}

		return ctx.Status(fiber.StatusCreated).JSON(app.dbm.MissionDetail(m.ID, auth.UserID(ctx)))
	}
}

func getMissionPatchHandler(app *App) fiber.Handler {
	type editMissionReq struct {
		Name        *string `json:"name"`
		Description *string `json:"description"`
		MaxMembers  *int    `json:"max_members"`
		Status      *string `json:"status"`
	}

	return func(ctx *fiber.Ctx) error {
		var req editMissionReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.UpdateMission(id, auth.UserID(ctx), &workspace.EditMission{
			Name:        req.Name,
			Description: req.Description,
			MaxMembers:  req.MaxMembers,
			Status:      req.Status,
		}); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(app.dbm.MissionDetail(id, auth.UserID(ctx)))
	}
}

func getMissionDeleteHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.DeleteMission(id, auth.UserID(ctx)); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "mission deleted"})
	}
}

func getJoinedMissionsHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(app.engine.JoinedMissions(auth.UserID(ctx)))
	}
}

func getCreatedMissionsHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(app.engine.CreatedMissions(auth.UserID(ctx)))
	}
}

func getJoinHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.Join(id, auth.UserID(ctx)); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "joined"})
	}
}

func getLeaveHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.Leave(id, auth.UserID(ctx)); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "left"})
	}
}

func getCrewHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		crew, err := app.engine.GetCrew(id)

		if err != nil {
			return sendError(ctx, err)
		}

		m, err := app.engine.GetMission(id, auth.UserID(ctx))

		if err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{
			"members":   crew,
			"count":     len(crew),
			"max_count": m.MaxMembers,
		})
	}
}

func getRolePutHandler(app *App) fiber.Handler {
	type roleReq struct {
		Role string `json:"role"`
	}

	return func(ctx *fiber.Ctx) error {
		var req roleReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		target, err := paramUint(ctx, "brawler")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.UpdateRole(id, target, req.Role, auth.UserID(ctx)); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "role updated"})
	}
}

func getKickHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		target, err := paramUint(ctx, "brawler")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.Kick(id, target, auth.UserID(ctx)); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "member kicked"})
	}
}

func getDashboardHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(app.engine.DashboardSummary(auth.UserID(ctx)))
	}
}
