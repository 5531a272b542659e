/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package actor

import "time"

const (
	// DefaultIdleTimeout is how long a dispatcher waits on an empty mailbox before it terminates
	DefaultIdleTimeout = 30 * time.Second
	// DefaultShutdownTimeout bounds how long Shutdown waits for workers to exit
	DefaultShutdownTimeout = 5 * time.Second
	// DefaultPort is the listening port reserved for a future transport
	DefaultPort = 12321
	// DefaultSpawnRetries is the number of attempts made to construct an actor
	DefaultSpawnRetries = 1

	// firstActorID is the identity handed to the first spawned actor
	firstActorID uint64 = 1000

	// systemNamePattern matches word characters with non-leading '-' or '_'
	systemNamePattern = `^[a-zA-Z0-9][a-zA-Z0-9-_]*$`

	spawnRetryInitialDelay = 10 * time.Millisecond
	spawnRetryMaxDelay     = time.Second

	// minBoundedCapacity is the smallest capacity of a bounded mailbox
	minBoundedCapacity = 2

	// maxRegistryShards caps the number of registry shards
	maxRegistryShards = 64
)
