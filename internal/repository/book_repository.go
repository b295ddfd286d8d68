package repository

import (
	"context"
	"time"

	"github.com/bookshelf/bookshelf-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type BookRepository interface {
	Create(ctx context.Context, req *domain.BookRequest, price float64) (*domain.Book, error)
	GetByID(ctx context.Context, id int64) (*domain.Book, error)
	Update(ctx context.Context, id int64, req *domain.BookRequest, price float64) (*domain.Book, error)
	Delete(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
}

type bookRepository struct {
	pool *pgxpool.Pool
}

func NewBookRepository(pool *pgxpool.Pool) BookRepository {
	return &bookRepository{pool: pool}
}

const bookCols = `id, title, author, price, category, created_at, updated_at`

func (r *bookRepository) Create(ctx context.Context, req *domain.BookRequest, price float64) (*domain.Book, error) {
	const q = `
		INSERT INTO books (title, author, price, category)
		VALUES ($1, $2, $3, $4)
		RETURNING ` + bookCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Book
	err := r.pool.QueryRow(ctx, q, req.Title, req.Author, price, req.Category).Scan(
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Category, &b.CreatedAt, &b.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) GetByID(ctx context.Context, id int64) (*domain.Book, error) {
	const q = `SELECT ` + bookCols + ` FROM books WHERE id = $1`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Book
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Category, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Update(ctx context.Context, id int64, req *domain.BookRequest, price float64) (*domain.Book, error) {
	const q = `
		UPDATE books
		SET title = $2, author = $3, price = $4, category = $5, updated_at = now()
		WHERE id = $1
		RETURNING ` + bookCols

	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Book
	err := r.pool.QueryRow(ctx, q, id, req.Title, req.Author, price, req.Category).Scan(
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Category, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	const q = `DELETE FROM books WHERE id = $1 RETURNING ` + bookCols
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	var b domain.Book
	err := r.pool.QueryRow(ctx, q, id).Scan(
		&b.ID, &b.Title, &b.Author, &b.Price, &b.Category, &b.CreatedAt, &b.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *bookRepository) List(ctx context.Context) ([]domain.Book, error) {
	const q = `SELECT ` + bookCols + ` FROM books ORDER BY created_at DESC`
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var books []domain.Book
	for rows.Next() {
		var b domain.Book
		if err := rows.Scan(
			&b.ID, &b.Title, &b.Author, &b.Price, &b.Category, &b.CreatedAt, &b.UpdatedAt,
		); err != nil {
			return nil, err
		}
		books = append(books, b)
	}

	return books, rows.Err()
}
