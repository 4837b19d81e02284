package services

const (
	QUESTIONS_PER_PAGE = 10
)
