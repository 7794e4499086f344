package main

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/crewhq/crewhq/internal/auth"
	"github.com/crewhq/crewhq/internal/model"
	"github.com/crewhq/crewhq/internal/workspace"
)

func getMissionTasksHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		tasks, err := app.engine.GetMissionTasks(id, auth.UserID(ctx))

		if err != nil {
			return sendError(ctx, err)
		}

		result := make([]*model.TaskDTO, len(tasks))

		for i, t := range tasks {
			result[i] = model.ToTaskDTO(t)
		}

		return ctx.JSON(result)
	}
}

func getTaskPostHandler(app *App) fiber.Handler {
	type addTaskReq struct {
		Title       string     `json:"title"`
		Description string     `json:"description"`
		MemberID    *uint      `json:"member_id"`
		Priority    string     `json:"priority"`
		StartDate   *time.Time `json:"start_date"`
		EndDate     *time.Time `json:"end_date"`
	}

	return func(ctx *fiber.Ctx) error {
		var req addTaskReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		t, err := app.engine.CreateTask(id, auth.UserID(ctx), &workspace.AddTask{
			Title:       req.Title,
			Description: req.Description,
			MemberID:    req.MemberID,
			Priority:    req.Priority,
			StartDate:   req.StartDate,
			EndDate:     req.EndDate,
		})

		if err != nil {
			return sendError(ctx, err)
		}

		return ctx.Status(fiber.StatusCreated).JSON(model.ToTaskDTO(t))
	}
}

func getTaskPatchHandler(app *App) fiber.Handler {
	type editTaskReq struct {
		Title       *string `json:"title"`
		Description *string `json:"description"`
		MemberID    *uint   `json:"member_id"`
		Status      *string `json:"status"`
		Priority    *string `json:"priority"`
	}

	return func(ctx *fiber.Ctx) error {
		var req editTaskReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		t, err := app.engine.UpdateTask(id, auth.UserID(ctx), &workspace.EditTask{
			Title:       req.Title,
			Description: req.Description,
			MemberID:    req.MemberID,
			Status:      req.Status,
			Priority:    req.Priority,
		})

		if err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(model.ToTaskDTO(t))
	}
}

func getTaskDeleteHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.DeleteTask(id, auth.UserID(ctx)); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "task deleted"})
	}
}

func getAssignedTasksHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		tasks := app.engine.GetTasksByAssignee(auth.UserID(ctx))

		result := make([]*model.TaskDTO, len(tasks))

		for i, t := range tasks {
			result[i] = model.ToTaskDTO(t)
		}

		return ctx.JSON(result)
	}
}
