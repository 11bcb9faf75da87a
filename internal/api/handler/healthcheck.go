package handler

import (
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/business-advisor-api/infrastructure/database/postgres"
)

func HealthcheckHandler(conn *postgres.Connection) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if conn != nil {
			if err := conn.Ping(r.Context()); err != nil {
				logrus.WithError(err).Error("healthcheck: banco de dados inacessível")
				http.Error(w, "database unreachable", http.StatusServiceUnavailable)
				return
			}
		}

		_, err := w.Write([]byte(time.Now().String()))
		if err != nil {
			logrus.WithError(err).Warn("error responding to healthcheck")
		}
	})
}
