// Copyright (c) 2025 The Sustainify Authors.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: database connection string (required)
  - DatabaseType: sqlite, postgres or pgx (default: sqlite)
  - CredentialsFile: dotenv file supplying DATABASE_URL / DATABASE_TYPE
  - UploadDir: where uploaded images are written (default: static/uploads)
  - UploadURLPrefix: URL path images are served under (default: /static/uploads/)
  - RewardPoints: points credited to the top user per post (default: 10)
  - MaxUploadBytes: request body limit (default: 10 MB)

# CLI Flags

	-p             Server port
	-d             Database URL
	-t             Database type
	-credentials   Credentials file
	-upload-dir    Upload directory
	-upload-url    Upload URL prefix
	-reward        Reward points
	-max-upload    Body limit, human readable ("10MB", "2 MiB")
	-v             Debug logging

# Environment Variables

Flags fall back to environment variables:

	PORT              → -p
	DATABASE_URL      → -d
	DATABASE_TYPE     → -t
	CREDENTIALS_FILE  → -credentials
	UPLOAD_DIR        → -upload-dir
	UPLOAD_URL_PREFIX → -upload-url
	REWARD_POINTS     → -reward
	MAX_UPLOAD_SIZE   → -max-upload
	LOG_LEVEL=debug   → -v

CLI flags take precedence over environment variables, which take precedence
over the credentials file.

# Validation

ParseFlags returns an error if:

  - no database URL is found anywhere
  - PORT is not a number
  - REWARD_POINTS is not a positive integer
  - MAX_UPLOAD_SIZE cannot be parsed
*/
package cliparse
