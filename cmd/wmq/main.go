/* Copyright 2024 The whens Authors
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 * http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

// Package main is a process that subscribes to MQTT topics and
// dispatches each in-bound JSON payload through a YAML table.
// Messages the actions emit are published to an out-bound topic.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gerardvm/whens/core"
	"github.com/gerardvm/whens/interpreters"
	gojainterp "github.com/gerardvm/whens/interpreters/goja"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/jsccast/yaml"
)

func main() {

	var (
		// Follow mosquitto_sub command line args where we can.

		broker    = flag.String("h", "tcp://localhost", "Broker hostname")
		clientId  = flag.String("i", "", "Client id")
		port      = flag.Int("p", 1883, "Broker port")
		keepAlive = flag.Int("k", 600, "Keep-alive in seconds")
		userName  = flag.String("u", "", "Username")
		password  = flag.String("P", "", "Password")
		clean     = flag.Bool("c", true, "Clean session")
		quiesce   = flag.Int("quiesce", 100, "Disconnection quiescence (in milliseconds)")

		subTopics = flag.String("t", "", "subscription topic(s), comma-separated")
		qos       = flag.Int("qos", 0, "QoS for subscriptions and publications")
		outTopic  = flag.String("o", "misc", "out-bound message topic")

		tableFilename = flag.String("s", "", "table filename (YAML)")
		propsJS       = flag.String("props", "{}", "props (in JSON)")
		libDir        = flag.String("libs", ".", "directory containing script libraries")
	)

	flag.Parse()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mqtt.ERROR = log.New(os.Stderr, "mqtt.error", 0)

	is := interpreters.Standard()
	gi := gojainterp.NewInterpreter()
	gi.LibraryProvider = gojainterp.MakeFileLibraryProvider(*libDir)
	is["goja"] = gi

	var props core.Props
	if err := json.Unmarshal([]byte(*propsJS), &props); err != nil {
		panic(err)
	}

	tableSrc, err := os.ReadFile(*tableFilename)
	if err != nil {
		panic(err)
	}
	var table core.Table
	if err = yaml.Unmarshal(tableSrc, &table); err != nil {
		panic(err)
	}
	if err = table.Compile(ctx, is, true); err != nil {
		panic(err)
	}

	opts := mqtt.NewClientOptions()

	if *port != 0 {
		*broker = fmt.Sprintf("%s:%d", *broker, *port)
	}
	opts.AddBroker(*broker)

	if *clientId == "" {
		*clientId = "wmq-" + core.Gensym(8)
	}
	opts.SetClientID(*clientId)

	if *userName != "" {
		opts.SetUsername(*userName)
	}
	if *password != "" {
		opts.SetPassword(*password)
	}

	opts.SetKeepAlive(time.Duration(*keepAlive) * time.Second)
	opts.SetCleanSession(*clean)

	c := mqtt.NewClient(opts)
	if t := c.Connect(); t.Wait() && t.Error() != nil {
		log.Fatal(t.Error())
	}
	defer c.Disconnect(uint(*quiesce))

	handler := func(client mqtt.Client, m mqtt.Message) {
		var value interface{}
		if err := json.Unmarshal(m.Payload(), &value); err != nil {
			log.Printf("can't parse %s: %v", m.Payload(), err)
			return
		}

		out, err := table.Evaluate(ctx, value, props)
		if err != nil {
			log.Printf("evaluation error on %s: %v", m.Topic(), err)
			return
		}

		for _, x := range out.Emitted {
			js, err := json.Marshal(&x)
			if err != nil {
				log.Printf("can't marshal %#v: %v", x, err)
				continue
			}
			if t := client.Publish(*outTopic, byte(*qos), false, js); t.Wait() && t.Error() != nil {
				log.Printf("publish error: %v", t.Error())
			}
		}
	}

	for _, topic := range strings.Split(*subTopics, ",") {
		if topic = strings.TrimSpace(topic); topic == "" {
			continue
		}
		if t := c.Subscribe(topic, byte(*qos), handler); t.Wait() && t.Error() != nil {
			log.Fatal(t.Error())
		}
		log.Printf("subscribed to %s", topic)
	}

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
	<-sig
}
