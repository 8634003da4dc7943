// Package bot wires Telegram updates to the catalog core.
//
// [Bot.Run] long-polls the Bot API and handles each update on its own
// goroutine: one conversation is processed at a time per chat, while
// different chats proceed concurrently. Handlers cover /start, plain
// text search, the inline-keyboard callback menu (categories, library
// stats, the admin panel) and inline queries.
//
// The package is glue: all catalog state lives in the catalog cache,
// all sends go through the delivery coordinator or the Telegram
// service, and all persistence goes through the repositories.
package bot
