package main

import (
	"io"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/crewhq/crewhq/internal/auth"
	"github.com/crewhq/crewhq/internal/model"
	"github.com/crewhq/crewhq/internal/workspace"
)

func getSubmissionsHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		subs, err := app.engine.GetSubmissions(id, auth.UserID(ctx))

		if err != nil {
			return sendError(ctx, err)
		}

		result := make([]*model.SubmissionDTO, len(subs))

		for i, s := range subs {
			result[i] = model.ToSubmissionDTO(s, app.names.Load(s.BrawlerID))
		}

		return ctx.JSON(result)
	}
}

// getSubmissionPostHandler takes a multipart form: "file" plus optional
// "task_id" and "description" fields.
func getSubmissionPostHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		missionID, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		fh, err := ctx.FormFile("file")

		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).SendString("file is required")
		}

		f, err := fh.Open()

		if err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		defer f.Close()

		data, err := io.ReadAll(f)

		if err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		work := &workspace.SubmitWork{
			FileName:    fh.Filename,
			FileType:    fh.Header.Get(fiber.HeaderContentType),
			Data:        data,
			Description: ctx.FormValue("description"),
		}

		if v := ctx.FormValue("task_id"); v != "" {
			id, err := strconv.ParseUint(v, 10, 64)
			if err != nil || id == 0 {
				return ctx.Status(fiber.StatusBadRequest).SendString("bad task_id")
			}

			taskID := uint(id)
			work.TaskID = &taskID
		}

		s, err := app.engine.Submit(ctx.Context(), missionID, auth.UserID(ctx), work)

		if err != nil {
			return sendError(ctx, err)
		}

		return ctx.Status(fiber.StatusCreated).JSON(model.ToSubmissionDTO(s, ""))
	}
}

func getTaskSubmissionHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		s := app.engine.GetTaskSubmission(id)

		if s == nil {
			return ctx.JSON(nil)
		}

		return ctx.JSON(model.ToSubmissionDTO(s, app.names.Load(s.BrawlerID)))
	}
}

func getSubmissionPatchHandler(app *App) fiber.Handler {
	type editReq struct {
		Description string `json:"description"`
	}

	return func(ctx *fiber.Ctx) error {
		var req editReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.UpdateDescription(id, auth.UserID(ctx), req.Description); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "description updated"})
	}
}

func getSubmissionDeleteHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		id, err := paramUint(ctx, "id")

		if err != nil {
			return badParam(ctx, err)
		}

		if err := app.engine.DeleteSubmission(id, auth.UserID(ctx)); err != nil {
			return sendError(ctx, err)
		}

		return ctx.JSON(fiber.Map{"message": "submission deleted"})
	}
}
