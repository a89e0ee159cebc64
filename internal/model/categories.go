package model

import "strings"

// typePatterns maps image name substrings to service types.
var typePatterns = map[string]ServiceType{
	// Caches
	"redis":     ServiceTypeCache,
	"keydb":     ServiceTypeCache,
	"valkey":    ServiceTypeCache,
	"memcached": ServiceTypeCache,

	// Databases
	"mysql":   ServiceTypeDatabase,
	"mariadb": ServiceTypeDatabase,
	"percona": ServiceTypeDatabase,

	// Mail capture
	"mailhog": ServiceTypeMail,
	"mailpit": ServiceTypeMail,
}

// redisCompatible lists caches that answer the redis protocol.
var redisCompatible = map[string]bool{
	"redis":  true,
	"keydb":  true,
	"valkey": true,
}

// CategorizeService determines the type of a service from its name and image.
func CategorizeService(name, image string) ServiceType {
	if t, ok := typePatterns[strings.ToLower(name)]; ok {
		return t
	}
	lower := strings.ToLower(name + " " + image)
	for pattern, t := range typePatterns {
		if strings.Contains(lower, pattern) {
			return t
		}
	}
	return ServiceTypeContainer
}

// SpeaksRedis reports whether the image serves the redis protocol.
func SpeaksRedis(image string) bool {
	lower := strings.ToLower(image)
	for pattern := range redisCompatible {
		if strings.Contains(lower, pattern) {
			return true
		}
	}
	return false
}
