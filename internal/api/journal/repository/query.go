package journalRepository

const (
	queryCreateEntry = `
	INSERT INTO journal_entries (id, title, content, mood, tags, user_id, notion_page_id, created_at)
	VALUES (:id, :title, :content, :mood, :tags, :user_id, :notion_page_id, :created_at)
	`

	queryGetEntryByID = `
	SELECT id, title, content, mood, tags, user_id, notion_page_id, created_at
	FROM journal_entries
	WHERE id = :id
	`

	queryListEntriesByUser = `
	SELECT id, title, content, mood, tags, user_id, notion_page_id, created_at
	FROM journal_entries
	WHERE user_id = :user_id
	ORDER BY created_at DESC
	`

	queryUpdateEntry = `
	UPDATE journal_entries
	SET
		title = CASE WHEN :title = '' THEN title ELSE :title END,
		content = CASE WHEN :content = '' THEN content ELSE :content END,
		mood = CASE WHEN :mood = '' THEN mood ELSE :mood END,
		tags = COALESCE(:tags, tags)
	WHERE id = :id
	`

	querySetNotionPageID = `
	UPDATE journal_entries SET notion_page_id = :notion_page_id WHERE id = :id
	`

	queryDeleteEntry = `
	DELETE FROM journal_entries WHERE id = :id
	`
)
