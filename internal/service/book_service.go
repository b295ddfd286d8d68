package service

import (
	"context"
	"fmt"

	"github.com/bookshelf/bookshelf-api/internal/domain"
	"github.com/bookshelf/bookshelf-api/internal/repository"
)

type BookService interface {
	Create(ctx context.Context, req *domain.BookRequest) (*domain.Book, error)
	Get(ctx context.Context, id int64) (*domain.Book, error)
	Update(ctx context.Context, id int64, req *domain.BookRequest) (*domain.Book, error)
	Delete(ctx context.Context, id int64) (*domain.Book, error)
	List(ctx context.Context) ([]domain.Book, error)
}

type bookService struct {
	bookRepo repository.BookRepository
}

func NewBookService(bookRepo repository.BookRepository) BookService {
	return &bookService{bookRepo: bookRepo}
}

func (s *bookService) Create(ctx context.Context, req *domain.BookRequest) (*domain.Book, error) {
	req.Normalize()
	price, err := req.Validate()
	if err != nil {
		return nil, err
	}

	book, err := s.bookRepo.Create(ctx, req, price)
	if err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	return book, nil
}

func (s *bookService) Get(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.bookRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get book: %w", err)
	}
	if book == nil {
		return nil, domain.ErrBookNotFound
	}
	return book, nil
}

func (s *bookService) Update(ctx context.Context, id int64, req *domain.BookRequest) (*domain.Book, error) {
	req.Normalize()
	price, err := req.Validate()
	if err != nil {
		return nil, err
	}

	book, err := s.bookRepo.Update(ctx, id, req, price)
	if err != nil {
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if book == nil {
		return nil, domain.ErrBookNotFound
	}
	return book, nil
}

func (s *bookService) Delete(ctx context.Context, id int64) (*domain.Book, error) {
	book, err := s.bookRepo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete book: %w", err)
	}
	if book == nil {
		return nil, domain.ErrBookNotFound
	}
	return book, nil
}

func (s *bookService) List(ctx context.Context) ([]domain.Book, error) {
	books, err := s.bookRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	return books, nil
}
