package response

import "github.com/gofiber/fiber/v3"

type ErrorResponse struct {
	Error string `json:"error"`
}

const (
	MessageSkillsMissing       = "Please provide 'skills' in request body"
	MessageSkillsEmpty         = "Skills cannot be empty"
	MessageBadRequest          = "Bad request"
	MessageNotFound            = "Not found"
	MessageMethodNotAllowed    = "Method not allowed"
	MessageTooManyRequests     = "Too many requests"
	MessageInternalServerError = "Internal server error"
	MessageError               = "Error"

	// InternalErrorPrefix prefixes every 5xx message.
	InternalErrorPrefix = "An error occurred: "
)

func Success(c fiber.Ctx, status int, data interface{}) error {
	return c.Status(normalizeStatus(status)).JSON(data)
}

func Error(c fiber.Ctx, status int, message string) error {
	st := normalizeStatus(status)
	msg := message
	if msg == "" {
		msg = DefaultMessageForStatus(st)
	}
	return c.Status(st).JSON(ErrorResponse{Error: msg})
}

func normalizeStatus(status int) int {
	if status < 100 || status > 599 {
		return fiber.StatusInternalServerError
	}
	return status
}

func DefaultMessageForStatus(status int) string {
	switch status {
	case fiber.StatusBadRequest:
		return MessageBadRequest
	case fiber.StatusNotFound:
		return MessageNotFound
	case fiber.StatusMethodNotAllowed:
		return MessageMethodNotAllowed
	case fiber.StatusTooManyRequests:
		return MessageTooManyRequests
	default:
		if status >= 500 {
			return MessageInternalServerError
		}
		return MessageError
	}
}
