package resource

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-keeper/internal/app"
	"github.com/MKhiriev/go-user-keeper/internal/service"
	"github.com/MKhiriev/go-user-keeper/models"
)

var (
	errMissingRequiredFields = models.NewErrorResponse(http.StatusBadRequest, app.MsgMissingRequiredFields)
	errMissingRequiredField  = models.NewErrorResponse(http.StatusBadRequest, app.MsgMissingRequiredField)
	errPasswordHashing       = models.NewErrorResponse(http.StatusInternalServerError, app.MsgPasswordHashing)
	errUserCreation          = models.NewErrorResponse(http.StatusInternalServerError, app.MsgUserCreation)
	errUserUpdate            = models.NewErrorResponse(http.StatusInternalServerError, app.MsgUserUpdate)
	errUserDeletion          = models.NewErrorResponse(http.StatusInternalServerError, app.MsgUserDeletion)
)

var postErrors = map[error]models.Response{
	service.ErrMissingRequiredFields: errMissingRequiredFields,
	service.ErrUserAlreadyExists:     models.NewErrorResponse(http.StatusBadRequest, app.MsgUserAlreadyExists),
	service.ErrPasswordHashing:       errPasswordHashing,
	service.ErrUserCreation:          errUserCreation,
}

var getErrors = map[error]models.Response{
	service.ErrMissingRequiredField: errMissingRequiredField,
	service.ErrUserNotFound:         {StatusCode: http.StatusNotFound},
}

var putErrors = map[error]models.Response{
	service.ErrMissingRequiredField:  errMissingRequiredField,
	service.ErrMissingFieldsToUpdate: models.NewErrorResponse(http.StatusBadRequest, app.MsgMissingFieldsToUpdate),
	service.ErrUserNotFound:          models.NewErrorResponse(http.StatusBadRequest, app.MsgUserDoesNotExist),
	service.ErrPasswordHashing:       errPasswordHashing,
	service.ErrUserUpdate:            errUserUpdate,
}

var deleteErrors = map[error]models.Response{
	service.ErrMissingRequiredField: errMissingRequiredField,
	service.ErrUserNotFound:         models.NewErrorResponse(http.StatusBadRequest, app.MsgUserNotFound),
	service.ErrUserDeletion:         errUserDeletion,
}

// responseFromError looks err up in table and falls back to def when no
// sentinel matches. Sentinels within one table never wrap each other.
func responseFromError(table map[error]models.Response, err error, def models.Response) models.Response {
	for target, resp := range table {
		if errors.Is(err, target) {
			return resp
		}
	}

	return def
}
