// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package event emits accepted votes to an external Kafka stream for
// downstream analysis. The stream is optional: when no brokers are
// configured the voting service simply has no publisher.
package event
