package model

import (
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

const Schema = `
CREATE TABLE IF NOT EXISTS countries (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (name)
);

CREATE TABLE IF NOT EXISTS cities (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	name VARCHAR NOT NULL,
	country_id INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (name, country_id),
	FOREIGN KEY(country_id) REFERENCES countries (id)
);

CREATE INDEX IF NOT EXISTS idx_cities_country_id ON cities (country_id);

CREATE TABLE IF NOT EXISTS users (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	twitter_id INTEGER NOT NULL,
	handle VARCHAR NOT NULL,
	name VARCHAR NOT NULL,
	description TEXT NOT NULL,
	city_id INTEGER,
	created_at DATETIME NOT NULL,
	days_since_tweet INTEGER,
	followers_count INTEGER NOT NULL,
	following_count INTEGER NOT NULL,
	favourites_count INTEGER NOT NULL,
	statuses_count INTEGER NOT NULL,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (twitter_id),
	UNIQUE (handle),
	FOREIGN KEY(city_id) REFERENCES cities (id)
);

CREATE INDEX IF NOT EXISTS idx_users_city_id ON users (city_id);

CREATE TABLE IF NOT EXISTS followers (
	follower_id INTEGER NOT NULL,
	followed_id INTEGER NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (follower_id, followed_id),
	FOREIGN KEY(follower_id) REFERENCES users (id),
	FOREIGN KEY(followed_id) REFERENCES users (id)
);

CREATE INDEX IF NOT EXISTS idx_followers_followed_id ON followers (followed_id);

CREATE TABLE IF NOT EXISTS keywords (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	text VARCHAR NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (text)
);

CREATE TABLE IF NOT EXISTS tweets (
	id INTEGER PRIMARY KEY AUTOINCREMENT,
	tweet_id INTEGER NOT NULL,
	author_id INTEGER NOT NULL,
	created_at DATETIME NOT NULL,
	favourites_count INTEGER NOT NULL,
	retweets_count INTEGER NOT NULL,
	text TEXT NOT NULL,
	reply BOOLEAN NOT NULL,
	recorded_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	UNIQUE (tweet_id),
	FOREIGN KEY(author_id) REFERENCES users (id)
);

CREATE INDEX IF NOT EXISTS idx_tweets_author_id ON tweets (author_id);

CREATE TABLE IF NOT EXISTS searches (
	keyword_id INTEGER NOT NULL,
	tweet_id INTEGER NOT NULL,
	lang VARCHAR NOT NULL,
	created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
	PRIMARY KEY (keyword_id, tweet_id),
	FOREIGN KEY(keyword_id) REFERENCES keywords (id),
	FOREIGN KEY(tweet_id) REFERENCES tweets (id)
);
`

func CreateTables(db *sqlx.DB) {
	db.MustExec(Schema)
}
