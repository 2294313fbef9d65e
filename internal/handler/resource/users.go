package resource

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/logger"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/internal/validators"
	"github.com/MKhiriev/go-user-keeper/models"
)

// Users serves the users resource. Methods other than post, get, put and
// delete are answered with 405 and an empty object.
func (h *Handlers) Users(ctx context.Context, req models.Request) models.Response {
	switch req.Method {
	case "post":
		return h.createUser(ctx, req)
	case "get":
		return h.getUser(ctx, req)
	case "put":
		return h.updateUser(ctx, req)
	case "delete":
		return h.deleteUser(ctx, req)
	default:
		return models.Response{StatusCode: http.StatusMethodNotAllowed}
	}
}

func (h *Handlers) createUser(ctx context.Context, req models.Request) models.Response {
	form := validators.UserFormFromPayload(validators.ParsePayload(req.Body))

	if err := h.users.CreateUser(ctx, form); err != nil {
		logger.FromContext(ctx).Err(err).Msg("user creation failed")
		return responseFromError(postErrors, err, errUserCreation)
	}

	return models.Response{StatusCode: http.StatusOK}
}

func (h *Handlers) getUser(ctx context.Context, req models.Request) models.Response {
	user, err := h.users.GetUser(ctx, validators.UserFormFromQuery(req.Query))
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("user lookup failed")
		return responseFromError(getErrors, err, getErrors[service.ErrUserNotFound])
	}

	return models.Response{StatusCode: http.StatusOK, Payload: user.Public()}
}

func (h *Handlers) updateUser(ctx context.Context, req models.Request) models.Response {
	form := validators.UserFormFromPayload(validators.ParsePayload(req.Body))

	if err := h.users.UpdateUser(ctx, form); err != nil {
		logger.FromContext(ctx).Err(err).Msg("user update failed")
		return responseFromError(putErrors, err, errUserUpdate)
	}

	return models.Response{StatusCode: http.StatusOK}
}

func (h *Handlers) deleteUser(ctx context.Context, req models.Request) models.Response {
	if err := h.users.DeleteUser(ctx, validators.UserFormFromQuery(req.Query)); err != nil {
		logger.FromContext(ctx).Err(err).Msg("user deletion failed")
		return responseFromError(deleteErrors, err, errUserDeletion)
	}

	return models.Response{StatusCode: http.StatusOK}
}
