package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/GoSim-25-26J-441/registry-backend/internal/logging"
	"github.com/GoSim-25-26J-441/registry-backend/internal/registry/domain"
)

type errorDetail struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

type errorBody struct {
	Error   string        `json:"error"`
	Details []errorDetail `json:"details,omitempty"`
}

func details(err error) []errorDetail {
	var many domain.ValidationErrors
	if errors.As(err, &many) {
		out := make([]errorDetail, 0, len(many))
		for _, ve := range many {
			out = append(out, errorDetail{Field: ve.Field, Code: ve.Code, Message: ve.Message})
		}
		return out
	}
	var one *domain.ValidationError
	if errors.As(err, &one) {
		return []errorDetail{{Field: one.Field, Code: one.Code, Message: one.Message}}
	}
	return nil
}

// writeError maps domain errors to status codes. Anything unrecognised is
// logged and reported as a generic 500.
func writeError(c *gin.Context, operation string, err error) {
	var nf *domain.NotFoundError
	var conflict *domain.ConflictError
	switch {
	case errors.As(err, &nf):
		c.JSON(http.StatusNotFound, errorBody{Error: nf.Error()})
	case errors.Is(err, domain.ErrValidation):
		c.JSON(http.StatusBadRequest, errorBody{Error: "validation failed", Details: details(err)})
	case errors.As(err, &conflict):
		c.JSON(http.StatusConflict, errorBody{Error: conflict.Error()})
	default:
		logging.New(c.Request.Context()).Error(operation, err)
		c.JSON(http.StatusInternalServerError, errorBody{Error: "internal server error"})
	}
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, errorBody{Error: message})
}

// pathID parses a positive integer path parameter, writing a 400 when it is not one.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}
