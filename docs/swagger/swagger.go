// Package swagger Cleaning Marketplace API.
//
// Бэкенд маркетплейса клининговых услуг. Предоставляет API для геопоиска
// исполнителей по geohash-индексу, управления профилями и анкетами,
// заявок на уборку и симуляции оплаты.
//
// Основные возможности:
// - Поиск активных исполнителей вокруг точки с точным фильтром по радиусу зоны
// - Профили пользователей и анкеты исполнителей с рабочими зонами
// - Заявки со статусами pending/accepted/declined/completed/cancelled
// - Симуляция оплаты банковской картой
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
//	Security:
//	- api_key:
//
//	SecurityDefinitions:
//	api_key:
//	     type: apiKey
//	     name: X-User-ID
//	     in: header
//
// swagger:meta
package swagger
