package errors

import (
	"net/http"

	"hivewatch/internal/errors"
)

// AppError is an error the delivery layer can render as a response envelope.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	// Message is shown to the beekeeper and is always French.
	Message() string
	// Details is optional and dropped from server-side and auth failures.
	Details() string
}

// BaseError is a catalogued AppError. Copies made by WithDetails still match
// the original under errors.Is.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func NewBaseError(httpCode int, errorCode, message, details string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message, details: details}
}

func (e *BaseError) Error() string     { return e.message }
func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// Is matches any BaseError carrying the same error code.
func (e *BaseError) Is(target error) bool {
	other, ok := target.(*BaseError)

	return ok && other.errorCode == e.errorCode
}

// WithDetails returns a copy of e carrying details.
func (e *BaseError) WithDetails(details string) *BaseError {
	clone := *e
	clone.details = details

	return &clone
}

// WrapMessage annotates e with context while keeping it matchable.
func (e *BaseError) WrapMessage(message string) error {
	return errors.Wrap(e, message)
}

// Lookups.
var (
	ErrSensorNotFound = NewBaseError(http.StatusNotFound, "SENSOR_NOT_FOUND", "Capteur introuvable", "")
	ErrHiveNotFound   = NewBaseError(http.StatusNotFound, "HIVE_NOT_FOUND", "Ruche introuvable", "")
	ErrApiaryNotFound = NewBaseError(http.StatusNotFound, "APIARY_NOT_FOUND", "Rucher introuvable", "")
	ErrUserNotFound   = NewBaseError(http.StatusNotFound, "USER_NOT_FOUND", "Utilisateur introuvable", "")
)

// Access.
var (
	ErrForbidden            = NewBaseError(http.StatusForbidden, "FORBIDDEN", "Acces refuse", "")
	ErrMissingAuthorization = NewBaseError(http.StatusUnauthorized, "MISSING_AUTHORIZATION", "En-tete Authorization manquant", "")
	ErrInvalidToken         = NewBaseError(http.StatusUnauthorized, "INVALID_TOKEN", "Jeton invalide ou expire", "")
	ErrWebhookUnauthorized  = NewBaseError(http.StatusUnauthorized, "WEBHOOK_UNAUTHORIZED", "Secret de webhook invalide", "")
)

// Input.
var (
	ErrSensorNotGPS          = NewBaseError(http.StatusBadRequest, "SENSOR_NOT_GPS", "Le capteur n'est pas un capteur GPS", "")
	ErrInvalidThreshold      = NewBaseError(http.StatusBadRequest, "INVALID_THRESHOLD", "Le seuil doit etre strictement positif", "")
	ErrMissingCompanyContext = NewBaseError(http.StatusBadRequest, "MISSING_COMPANY_CONTEXT", "Entreprise courante absente du jeton", "")
	ErrValidationFailed      = NewBaseError(http.StatusBadRequest, "VALIDATION_FAILED", "Donnees invalides", "")
)

// Geofence state and position provider.
var (
	ErrGPSAlertNotActive      = NewBaseError(http.StatusBadRequest, "GPS_ALERT_NOT_ACTIVE", "L'alerte GPS n'est pas activee pour ce capteur", "")
	ErrGPSReferenceMissing    = NewBaseError(http.StatusBadRequest, "GPS_REFERENCE_MISSING", "Position de reference manquante", "")
	ErrPositionUnavailable    = NewBaseError(http.StatusBadRequest, "POSITION_UNAVAILABLE", "Aucune position disponible pour ce capteur", "")
	ErrPositionProviderFailed = NewBaseError(http.StatusBadGateway, "POSITION_PROVIDER_FAILED", "Le fournisseur de positions a echoue", "")
)

var ErrInternalError = NewBaseError(http.StatusInternalServerError, "INTERNAL_ERROR", "Erreur interne", "")

// DatabaseExecuteError hides a storage failure behind a 500 while keeping the cause for logs.
type DatabaseExecuteError struct {
	err     error
	details string
}

func NewDatabaseExecuteError(err error, details string) AppError {
	return &DatabaseExecuteError{err: err, details: details}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.details).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Echec de la requete en base de donnees" }
func (e *DatabaseExecuteError) Details() string   { return e.details }
