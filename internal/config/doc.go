// Reelpick - Genre-Based Movie Discovery and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/reelpick

/*
Package config loads Reelpick configuration with Koanf v2.

Sources, lowest to highest precedence:

 1. Built-in defaults (defaultConfig)
 2. YAML file: $CONFIG_PATH, config.yaml, config.yml, /etc/reelpick/config.yaml
 3. Environment variables, after merging a .env file ($DOTENV_PATH or ./.env)

Only variables listed in envMappings are read, for example:

	TMDB_API_KEY          tmdb.api_key (required)
	TMDB_TIMEOUT          tmdb.timeout (10s)
	PREFERENCES_BACKEND   preferences.backend (json | badger)
	PREFERENCES_PATH      preferences.path (user_preferences.json)
	RECOMMEND_MAX_GENRES  recommend.max_genres (3)
	HTTP_PORT             server.port (8080)
	CORS_ORIGINS          server.cors_origins (comma separated)
	LOG_LEVEL             logging.level (info)

Example config.yaml:

	tmdb:
	  api_key: "xxxx"
	  language: en-US
	preferences:
	  backend: json
	  path: /data/user_preferences.json
	server:
	  port: 8080
*/
package config
