package consts

const (
	PostDetailKey = "post:detail:"
)

const (
	ReviewOutboxLock = "lock:review:outbox"
)
