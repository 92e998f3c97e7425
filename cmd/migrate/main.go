package main

import (
	"flag"
	"os"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/revenue-dashboard-api/infrastructure/migration"
	"github.com/vfg2006/revenue-dashboard-api/internal/config"
)

func main() {
	cmd := flag.String("cmd", "up", "up | down | version")
	flag.Parse()

	cfg, err := config.NewConfig()
	if err != nil {
		logrus.Fatal(err)
	}

	if err := run(*cmd, cfg.Database.DSN); err != nil {
		logrus.WithError(err).Error("Falha na migração")
		os.Exit(1)
	}
}

func run(cmd string, dsn string) error {
	switch cmd {
	case "up":
		if err := migration.Up(dsn); err != nil {
			return errors.Wrap(err, "up")
		}
		logrus.Info("Migrações aplicadas")
	case "down":
		if err := migration.Down(dsn); err != nil {
			return errors.Wrap(err, "down")
		}
		logrus.Info("Última migração revertida")
	case "version":
		version, dirty, err := migration.Version(dsn)
		if err != nil {
			return errors.Wrap(err, "version")
		}
		logrus.WithFields(logrus.Fields{
			"version": version,
			"dirty":   dirty,
		}).Info("Versão do schema")
	default:
		return errors.Errorf("comando desconhecido %q (use up, down ou version)", cmd)
	}

	return nil
}
