package constants

// Redis 键前缀
const (
	// RedisKeyRevokedToken 已注销 JWT 的 jti，值无意义，TTL 与令牌剩余有效期一致
	RedisKeyRevokedToken = "auth:revoked:"
)
