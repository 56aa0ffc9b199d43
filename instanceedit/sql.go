package instanceedit

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
)

// DBConfig locates a Reactome MySQL database.
type DBConfig struct {
	Host     string `mapstructure:"host" yaml:"host"`
	Port     int    `mapstructure:"port" yaml:"port"`
	Name     string `mapstructure:"name" yaml:"name"`
	User     string `mapstructure:"user" yaml:"user"`
	Password string `mapstructure:"password" yaml:"password"`
}

// DSN returns the go-sql-driver/mysql data source name for the configuration.
func (c DBConfig) DSN() string {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	cfg.DBName = c.Name
	cfg.User = c.User
	cfg.Passwd = c.Password
	cfg.ParseTime = true
	cfg.Loc = time.Local
	return cfg.FormatDSN()
}

// SQLAdaptor stores InstanceEdits in the DatabaseObject, InstanceEdit and
// InstanceEdit_2_author tables of a Reactome database.
type SQLAdaptor struct {
	db *sqlx.DB
}

// NewSQLAdaptor wraps an open database handle.
func NewSQLAdaptor(db *sqlx.DB) *SQLAdaptor {
	return &SQLAdaptor{db: db}
}

// Open connects to the MySQL database described by cfg and checks that it answers.
func Open(ctx context.Context, cfg DBConfig) (*SQLAdaptor, error) {
	db, err := sqlx.Open("mysql", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(4)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database %s: %w", cfg.Name, err)
	}

	return NewSQLAdaptor(db), nil
}

// Close closes the underlying database handle.
func (a *SQLAdaptor) Close() error {
	return a.db.Close()
}

type databaseObject struct {
	DBID        int64          `db:"DB_ID"`
	Class       string         `db:"_class"`
	DisplayName sql.NullString `db:"_displayName"`
}

// FetchInstance reads the DatabaseObject row of dbID.
func (a *SQLAdaptor) FetchInstance(ctx context.Context, dbID int64) (*Instance, error) {
	var row databaseObject
	err := a.db.GetContext(ctx, &row,
		"SELECT DB_ID, _class, _displayName FROM DatabaseObject WHERE DB_ID = ?", dbID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get instance: %w", err)
	}

	return &Instance{
		DBID:        row.DBID,
		SchemaClass: row.Class,
		DisplayName: row.DisplayName.String,
	}, nil
}

// StoreInstance inserts an InstanceEdit and its author in one transaction.
func (a *SQLAdaptor) StoreInstance(ctx context.Context, instance *Instance) (int64, error) {
	if instance.SchemaClass != ClassInstanceEdit {
		return 0, fmt.Errorf("storing %s instances is not supported", instance.SchemaClass)
	}

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.ExecContext(ctx,
		"INSERT INTO DatabaseObject (_class, _displayName, _timestamp) VALUES (?, ?, ?)",
		instance.SchemaClass, instance.DisplayName, instance.DateTime)
	if err != nil {
		return 0, fmt.Errorf("failed to insert DatabaseObject: %w", err)
	}
	dbID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read new DB_ID: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO InstanceEdit (DB_ID, dateTime, note) VALUES (?, ?, ?)",
		dbID, instance.DateTime.Format(DateTimeLayout), instance.Note); err != nil {
		return 0, fmt.Errorf("failed to insert InstanceEdit: %w", err)
	}

	if instance.Author != nil {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO InstanceEdit_2_author (DB_ID, author_rank, author, author_class) VALUES (?, 0, ?, ?)",
			dbID, instance.Author.DBID, instance.Author.SchemaClass); err != nil {
			return 0, fmt.Errorf("failed to insert author: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("failed to commit: %w", err)
	}

	return dbID, nil
}

// UpdateInstance writes the display name, date and note of a stored InstanceEdit.
func (a *SQLAdaptor) UpdateInstance(ctx context.Context, instance *Instance) error {
	if instance.DBID == 0 {
		return errors.New("instance has not been stored")
	}

	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		"UPDATE DatabaseObject SET _displayName = ? WHERE DB_ID = ?",
		instance.DisplayName, instance.DBID); err != nil {
		return fmt.Errorf("failed to update DatabaseObject: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		"UPDATE InstanceEdit SET dateTime = ?, note = ? WHERE DB_ID = ?",
		instance.DateTime.Format(DateTimeLayout), instance.Note, instance.DBID); err != nil {
		return fmt.Errorf("failed to update InstanceEdit: %w", err)
	}

	return tx.Commit()
}

var _ Adaptor = (*SQLAdaptor)(nil)
