package main

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"github.com/crewhq/crewhq/internal/auth"
	"github.com/crewhq/crewhq/internal/model"
)

func getRegisterHandler(app *App) fiber.Handler {
	type registerReq struct {
		Username    string `json:"username"`
		Password    string `json:"password"`
		DisplayName string `json:"display_name"`
	}

	return func(ctx *fiber.Ctx) error {
		var req registerReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		p, err := app.users.Register(req.Username, req.Password, req.DisplayName)

		if err != nil {
			if errors.Is(err, auth.ErrUserExists) {
				return ctx.Status(fiber.StatusConflict).SendString(err.Error())
			}

			return ctx.Status(fiber.StatusBadRequest).SendString(err.Error())
		}

		return ctx.Status(fiber.StatusCreated).JSON(p)
	}
}

func getLoginHandler(app *App) fiber.Handler {
	type loginReq struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	return func(ctx *fiber.Ctx) error {
		var req loginReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		p, err := app.users.Login(req.Username, req.Password)

		if err != nil {
			return ctx.Status(fiber.StatusUnauthorized).SendString(err.Error())
		}

		return ctx.JSON(p)
	}
}

func getProfileHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		b := app.users.GetBrawler(auth.UserID(ctx))

		if b == nil {
			return ctx.SendStatus(fiber.StatusNotFound)
		}

		return ctx.JSON(model.ToBrawlerDTO(b))
	}
}

func getProfilePatchHandler(app *App) fiber.Handler {
	type profileReq struct {
		DisplayName *string `json:"display_name"`
		Bio         *string `json:"bio"`
	}

	return func(ctx *fiber.Ctx) error {
		var req profileReq

		if err := ctx.BodyParser(&req); err != nil {
			return ctx.SendStatus(fiber.StatusBadRequest)
		}

		if err := app.users.UpdateProfile(auth.UserID(ctx), &auth.ProfileUpdate{
			DisplayName: req.DisplayName,
			Bio:         req.Bio,
		}); err != nil {
			return ctx.Status(fiber.StatusInternalServerError).SendString(err.Error())
		}

		return ctx.JSON(model.ToBrawlerDTO(app.users.GetBrawler(auth.UserID(ctx))))
	}
}

func getAvatarPostHandler(app *App) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
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

		url, err := app.users.UploadAvatar(ctx.Context(), auth.UserID(ctx), fh.Filename, data)

		if err != nil {
			return ctx.Status(fiber.StatusBadGateway).SendString(err.Error())
		}

		return ctx.JSON(fiber.Map{"avatar_url": url})
	}
}
