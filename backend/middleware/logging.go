package middleware

import (
	"log"
	"time"

	"vibevoice/backend/utils"

	"github.com/gofiber/fiber/v2"
)

// LoggingMiddleware пишет одну строку на каждый запрос. Loggers created with
// log.Lmsgprefix (the json format) are left uncolored.
func LoggingMiddleware(logger *log.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		// Передаем управление следующему обработчику
		err := c.Next()

		status := c.Response().StatusCode()
		method := c.Method()

		var statusColor, methodColor, resetColor string
		if logger.Flags()&log.Lmsgprefix == 0 {
			statusColor, methodColor, resetColor = utils.StatusColor(status), utils.MethodColor(method), "\033[0m"
		}

		line := []interface{}{
			c.IP(),
			methodColor, method, resetColor,
			c.Path(),
			statusColor, status, resetColor,
			time.Since(start),
		}
		if err != nil {
			logger.Printf("%s %s%s%s %s %s%d%s %v error=%v", append(line, err)...)
		} else {
			logger.Printf("%s %s%s%s %s %s%d%s %v", line...)
		}

		return err
	}
}
