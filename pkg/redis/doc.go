// Package redis opens the optional Redis connection used to share the
// recipient statistics cache between service instances.
//
//	client, err := redis.Open(ctx, redis.Config{URL: "redis://localhost:6379/0"})
//	if err != nil {
//		return err
//	}
//	checks["redis"] = redis.Healthcheck(client)
//	hooks = append(hooks, redis.Shutdown(client))
//
// Open retries the initial ping RetryAttempts times before giving up.
package redis
