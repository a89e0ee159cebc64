package service

import (
	"context"
	"fmt"
)

const (
	relationalPort         = 3306
	relationalRootPassword = "root"
)

// EnvNaming maps relational credentials onto the environment variables a
// particular image understands.
type EnvNaming func(cfg Configuration) map[string]string

// MySQLEnv names credentials the way the official mysql image expects.
func MySQLEnv(cfg Configuration) map[string]string {
	return map[string]string{
		"MYSQL_USER":          cfg.String("username"),
		"MYSQL_PASSWORD":      cfg.String("password"),
		"MYSQL_DATABASE":      cfg.String("database"),
		"MYSQL_ROOT_PASSWORD": relationalRootPassword,
	}
}

// MariaDBEnv names credentials the way the official mariadb image expects.
func MariaDBEnv(cfg Configuration) map[string]string {
	return map[string]string{
		"MARIADB_USER":          cfg.String("username"),
		"MARIADB_PASSWORD":      cfg.String("password"),
		"MARIADB_DATABASE":      cfg.String("database"),
		"MARIADB_ROOT_PASSWORD": relationalRootPassword,
	}
}

// Relational is a MySQL-compatible database. Variants share ports, volumes
// and credentials and differ only in identity and environment naming.
type Relational struct {
	base
	env EnvNaming
}

// NewMySQL creates a MySQL descriptor from stored configuration.
func NewMySQL(configuration Configuration) Descriptor {
	return newRelational(identity{label: "MySQL", image: "mysql", group: GroupDatabase}, MySQLEnv, configuration)
}

// NewMariaDB creates a MariaDB descriptor from stored configuration.
func NewMariaDB(configuration Configuration) Descriptor {
	return newRelational(identity{label: "MariaDB", image: "mariadb", group: GroupDatabase}, MariaDBEnv, configuration)
}

func newRelational(id identity, env EnvNaming, configuration Configuration) *Relational {
	return &Relational{
		base: newBase(id, Configuration{
			"port":     relationalPort,
			"database": "app",
			"username": "app",
			"password": "root",
		}, configuration),
		env: env,
	}
}

func (r *Relational) Definition() *Definition {
	cfg := r.Configuration()
	def := r.definition()
	def.Ports = []string{fmt.Sprintf("%s:%d", cfg.String("port"), relationalPort)}
	def.Volumes = []string{r.PackageName() + "-data:/var/lib/mysql"}
	def.Environment = r.env(cfg)
	return def
}

func (r *Relational) ConfigurationQuestions(ctx context.Context, tags TagLister) []Question {
	password := r.inputQuestion("password", "Input database password")
	password.Hidden = true

	return []Question{
		r.versionQuestion(ctx, tags),
		r.inputQuestion("database", "Input database name"),
		r.inputQuestion("port", "Input database port"),
		r.inputQuestion("username", "Input database username"),
		password,
	}
}
