package infra_pg_init

import (
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/ibanezbetes/trinity-sub006/internal/config"
)

// MustEstablishConn connects the criteria store or dies. The store only sees
// one small upsert/select per room, so the pool is kept modest.
func MustEstablishConn(cfg config.Postgres) *sqlx.DB {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host,
		cfg.Port,
		cfg.User,
		cfg.Password,
		cfg.DBName,
		cfg.SSLMode,
	)
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		log.Fatalf("criteria store connect failed : %v", err)
	}

	db.SetMaxOpenConns(8)
	log.Printf("criteria store connected : %s:%s/%s", cfg.Host, cfg.Port, cfg.DBName)

	return db
}
