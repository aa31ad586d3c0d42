package handler

import (
	"net/http"

	"github.com/hakuramasam/arcade-gmmc/internal/utils"
)

func HealthCheck(w http.ResponseWriter, r *http.Request) {
	utils.Message(w, "ok")
}
