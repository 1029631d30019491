// Package health provides liveness and readiness probes.
//
//	r.Get("/health/live", health.LivenessHandler())
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//		"contacts":  contactsCheck,
//		"transport": transport.Verify,
//		"redis":     redis.Healthcheck(client),
//	}))
//
// Probes answer in plain text ("OK" or "Service Unavailable"). Clients that
// send Accept: application/json or ?format=json get the per-check report:
//
//	{"status":"unhealthy","checks":{"transport":{"status":"unhealthy","error":"..."}}}
package health
