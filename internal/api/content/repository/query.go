package contentRepository

const (
	queryCreateSkill = `
	INSERT INTO skills (id, name, category, created_at)
	VALUES (:id, :name, :category, NOW())
	`

	queryListSkills = `
	SELECT id, name, category, created_at
	FROM skills
	ORDER BY created_at ASC
	`

	queryUpdateSkill = `
	UPDATE skills
	SET
		name = CASE WHEN :name = '' THEN name ELSE :name END,
		category = CASE WHEN :category = '' THEN category ELSE :category END
	WHERE id = :id
	`

	queryDeleteSkill = `
	DELETE FROM skills WHERE id = :id
	`

	queryCreateProject = `
	INSERT INTO projects (title, subtitle, category, description, color, created_at)
	VALUES (:title, :subtitle, :category, :description, :color, NOW())
	RETURNING id
	`

	queryListProjects = `
	SELECT id, title, subtitle, category, description, color, created_at
	FROM projects
	ORDER BY created_at ASC
	`

	queryUpdateProject = `
	UPDATE projects
	SET
		title = CASE WHEN :title = '' THEN title ELSE :title END,
		subtitle = CASE WHEN :subtitle = '' THEN subtitle ELSE :subtitle END,
		category = CASE WHEN :category = '' THEN category ELSE :category END,
		description = CASE WHEN :description = '' THEN description ELSE :description END,
		color = CASE WHEN :color = '' THEN color ELSE :color END
	WHERE id = :id
	`

	queryDeleteProject = `
	DELETE FROM projects WHERE id = :id
	`

	queryCreateBlog = `
	INSERT INTO blogs (id, title, excerpt, content, date, read_time, slug, category, tags, featured_image, is_published, scheduled_date, likes, created_at)
	VALUES (:id, :title, :excerpt, :content, :date, :read_time, :slug, :category, :tags, :featured_image, :is_published, :scheduled_date, :likes, NOW())
	`

	queryListBlogs = `
	SELECT id, title, excerpt, content, date, read_time, slug, category, tags, featured_image, is_published, scheduled_date, likes, created_at
	FROM blogs
	ORDER BY created_at DESC
	`

	queryUpdateBlog = `
	UPDATE blogs
	SET
		title = CASE WHEN :title = '' THEN title ELSE :title END,
		excerpt = CASE WHEN :excerpt = '' THEN excerpt ELSE :excerpt END,
		content = CASE WHEN :content = '' THEN content ELSE :content END,
		date = CASE WHEN :date = '' THEN date ELSE :date END,
		read_time = CASE WHEN :read_time = '' THEN read_time ELSE :read_time END,
		slug = CASE WHEN :slug = '' THEN slug ELSE :slug END,
		category = CASE WHEN :category = '' THEN category ELSE :category END,
		tags = COALESCE(:tags, tags),
		featured_image = CASE WHEN :featured_image = '' THEN featured_image ELSE :featured_image END,
		is_published = COALESCE(:is_published, is_published),
		scheduled_date = COALESCE(:scheduled_date, scheduled_date)
	WHERE id = :id
	`

	queryDeleteBlog = `
	DELETE FROM blogs WHERE id = :id
	`

	queryIncrementBlogLikes = `
	UPDATE blogs SET likes = likes + 1 WHERE id = :id RETURNING likes
	`

	queryDecrementBlogLikes = `
	UPDATE blogs SET likes = GREATEST(likes - 1, 0) WHERE id = :id RETURNING likes
	`

	queryCreateComment = `
	INSERT INTO comments (id, blog_id, user_name, text, date, hidden, created_at)
	VALUES (:id, :blog_id, :user_name, :text, :date, :hidden, NOW())
	`

	queryListComments = `
	SELECT id, blog_id, user_name, text, date, hidden, created_at
	FROM comments
	ORDER BY created_at ASC
	`

	queryGetCommentByID = `
	SELECT id, blog_id, user_name, text, date, hidden, created_at
	FROM comments
	WHERE id = :id
	`

	querySetCommentHidden = `
	UPDATE comments SET hidden = :hidden WHERE id = :id
	`

	queryDeleteComment = `
	DELETE FROM comments WHERE id = :id
	`

	queryCreateTestimonial = `
	INSERT INTO testimonials (id, text, author, role, created_at)
	VALUES (:id, :text, :author, :role, NOW())
	`

	queryListTestimonials = `
	SELECT id, text, author, role, created_at
	FROM testimonials
	ORDER BY created_at ASC
	`

	queryUpdateTestimonial = `
	UPDATE testimonials
	SET
		text = CASE WHEN :text = '' THEN text ELSE :text END,
		author = CASE WHEN :author = '' THEN author ELSE :author END,
		role = CASE WHEN :role = '' THEN role ELSE :role END
	WHERE id = :id
	`

	queryDeleteTestimonial = `
	DELETE FROM testimonials WHERE id = :id
	`
)
