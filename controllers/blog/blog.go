package blogController

import (
	"encoding/json"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"scholarnest/database"
	"scholarnest/middleware"
	"scholarnest/models"
	validators "scholarnest/validators/blog"

	"github.com/gofiber/fiber/v2"
	"github.com/gosimple/slug"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var tagPattern = regexp.MustCompile(`<[^>]*>`)

// deriveMetaDescription builds an SEO description from the excerpt, falling
// back to the stripped post content, cut on a word boundary at 160 chars.
func deriveMetaDescription(excerpt, contentHTML string) string {
	const max = 160

	source := strings.TrimSpace(excerpt)
	if source == "" {
		source = strings.TrimSpace(tagPattern.ReplaceAllString(contentHTML, " "))
		source = strings.Join(strings.Fields(source), " ")
	}

	if len(source) <= max {
		return source
	}

	// Cut on the last space before the limit.
	words := strings.Split(source[:max+1], " ")
	return strings.Join(words[:len(words)-1], " ") + "…"
}

func categoriesJSON(categories []string) datatypes.JSON {
	if len(categories) == 0 {
		return datatypes.JSON([]byte("[]"))
	}
	raw, _ := json.Marshal(categories)
	return datatypes.JSON(raw)
}

// CreateBlogPost creates a post; slug and meta description are derived when
// absent.
func CreateBlogPost(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlogPost").(*validators.CreateBlogPostRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	postSlug := strings.TrimSpace(reqData.Slug)
	if postSlug == "" {
		postSlug = slug.Make(reqData.Title)
	}

	status := reqData.Status
	if status == "" {
		status = models.BlogStatusDraft
	}

	post := models.BlogPost{
		Title:           strings.TrimSpace(reqData.Title),
		Slug:            postSlug,
		Excerpt:         reqData.Excerpt,
		ContentHTML:     reqData.ContentHTML,
		CoverImageURL:   reqData.CoverImageURL,
		AuthorName:      reqData.Author.Name,
		AuthorEmail:     strings.ToLower(reqData.Author.Email),
		AuthorImage:     reqData.Author.Image,
		Categories:      categoriesJSON(reqData.Categories),
		Status:          status,
		PublishedAt:     reqData.PublishedAt,
		MetaTitle:       reqData.MetaTitle,
		MetaDescription: reqData.MetaDescription,
	}

	if strings.TrimSpace(post.MetaDescription) == "" {
		post.MetaDescription = deriveMetaDescription(post.Excerpt, post.ContentHTML)
	}

	if err := database.Database.Db.Create(&post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug already exists", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Blog post created successfully!", post)
}

// GetBlogPosts lists posts, optionally filtered by status.
func GetBlogPosts(c *fiber.Ctx) error {
	db := database.Database.Db.Order("created_at desc")
	if status := c.Query("status"); status != "" {
		db = db.Where("status = ?", status)
	}

	var posts []models.BlogPost
	if err := db.Find(&posts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch blog posts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog posts fetched successfully!", fiber.Map{
		"count": len(posts),
		"posts": posts,
	})
}

// GetBlogPostBySlug returns a single post by its slug.
func GetBlogPostBySlug(c *fiber.Ctx) error {
	var post models.BlogPost
	if err := database.Database.Db.Where("slug = ?", c.Params("slug")).First(&post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post fetched successfully!", post)
}

func findPostByID(c *fiber.Ctx) (*models.BlogPost, error) {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return nil, err
	}
	var post models.BlogPost
	if err := database.Database.Db.First(&post, uint(id)).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// GetBlogPostByID returns a single post by its numeric id.
func GetBlogPostByID(c *fiber.Ctx) error {
	post, err := findPostByID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post fetched successfully!", post)
}

// UpdateBlogPost applies the provided fields only. The slug is kept unless
// explicitly supplied.
func UpdateBlogPost(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBlogPostUpdate").(*validators.UpdateBlogPostRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	post, err := findPostByID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found", nil)
	}

	if reqData.Title != nil {
		post.Title = strings.TrimSpace(*reqData.Title)
	}
	if reqData.Slug != nil {
		post.Slug = strings.TrimSpace(*reqData.Slug)
	}
	if reqData.Excerpt != nil {
		post.Excerpt = *reqData.Excerpt
	}
	if reqData.ContentHTML != nil {
		post.ContentHTML = *reqData.ContentHTML
	}
	if reqData.CoverImageURL != nil {
		post.CoverImageURL = *reqData.CoverImageURL
	}
	if reqData.Author != nil {
		post.AuthorName = reqData.Author.Name
		post.AuthorEmail = strings.ToLower(reqData.Author.Email)
		post.AuthorImage = reqData.Author.Image
	}
	if reqData.Categories != nil {
		post.Categories = categoriesJSON(reqData.Categories)
	}
	if reqData.Status != nil {
		post.Status = *reqData.Status
	}
	if reqData.PublishedAt != nil {
		post.PublishedAt = reqData.PublishedAt
	}
	if reqData.MetaTitle != nil {
		post.MetaTitle = *reqData.MetaTitle
	}
	if reqData.MetaDescription != nil {
		post.MetaDescription = *reqData.MetaDescription
	}

	if err := database.Database.Db.Save(post).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Slug already exists", nil)
		}
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post updated successfully!", post)
}

// LikeBlogPost increments the post's like counter.
func LikeBlogPost(c *fiber.Ctx) error {
	post, err := findPostByID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found", nil)
	}

	if err := database.Database.Db.Model(post).
		Update("likes", gorm.Expr("likes + 1")).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to like blog post!", nil)
	}

	post.Likes++
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post liked!", post)
}

// DeleteBlogPost removes the post.
func DeleteBlogPost(c *fiber.Ctx) error {
	post, err := findPostByID(c)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Blog post not found", nil)
	}

	if err := database.Database.Db.Unscoped().Delete(post).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete blog post!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Blog post deleted successfully!", nil)
}
