package handlers

import (
	"database/sql"
	"net/http"

	"tourbooking/internal/domain"
	"tourbooking/internal/domain/models"
	"tourbooking/internal/http/middleware"
	"tourbooking/internal/repositories"

	"github.com/gin-gonic/gin"
)

// GET /api/blogs
func GetBlogs(c *gin.Context) {
	repo := repositories.BlogRepository{}
	publishedOnly := middleware.CurrentUserRole(c) != models.RoleAdmin

	blogs, err := repo.List(publishedOnly)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blogs": blogs, "locale": c.DefaultQuery("locale", "en")})
}

// GET /api/blogs/:id
func GetBlogByID(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.BlogRepository{}
	blog, err := repo.GetByID(id)
	if err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "blog"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return
	}
	if !blog.Published && middleware.CurrentUserRole(c) != models.RoleAdmin {
		RespondDomainError(c, domain.NotFoundError{Resource: "blog"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"blog": blog})
}

// POST /api/admin/blogs
func CreateBlog(c *gin.Context) {
	var blog models.Blog
	if !BindJSONOrError(c, &blog) {
		return
	}
	if blog.TitleEN == "" {
		RespondDomainError(c, domain.ValidationError{Field: "titleEn", Msg: "title is required"})
		return
	}
	repo := repositories.BlogRepository{}
	id, err := repo.Insert(blog)
	if err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "blog created", "id": id})
}

// PUT /api/admin/blogs/:id
func UpdateBlog(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	var blog models.Blog
	if !BindJSONOrError(c, &blog) {
		return
	}
	repo := repositories.BlogRepository{}
	if err := repo.Update(id, blog); err != nil {
		RespondDomainError(c, domain.InternalError{Err: err})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog updated", "id": id})
}

// DELETE /api/admin/blogs/:id
func DeleteBlog(c *gin.Context) {
	id, ok := PathID(c)
	if !ok {
		return
	}
	repo := repositories.BlogRepository{}
	if err := repo.Delete(id); err != nil {
		if err == sql.ErrNoRows {
			RespondDomainError(c, domain.NotFoundError{Resource: "blog"})
		} else {
			RespondDomainError(c, domain.InternalError{Err: err})
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "blog deleted", "id": id})
}
