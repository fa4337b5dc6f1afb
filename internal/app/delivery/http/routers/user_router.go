package routers

import (
	"fmt"

	"kemandirian-service/internal/app/services/core/users"
	"kemandirian-service/internal/pkg/constvars"

	"github.com/go-chi/chi/v5"
)

func attachUserRoutes(router chi.Router, userController *users.UserController) {
	router.Post("/", userController.CreateUser)
	router.Get("/", userController.FindUsers)
	router.Get(fmt.Sprintf("/{%s}", constvars.URLParamUserID), userController.FindUserByID)
	router.Put(fmt.Sprintf("/{%s}", constvars.URLParamUserID), userController.UpdateUser)
	router.Delete(fmt.Sprintf("/{%s}", constvars.URLParamUserID), userController.DeleteUser)
}
